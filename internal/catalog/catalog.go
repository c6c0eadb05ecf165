// Package catalog carries the shop's fixed offering: services, barbers and
// the bookable time-slot grid. The data is static; bookings reference it by
// name and price only.
package catalog

type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"durationMin"`
	Category    string  `json:"category"`
	Featured    bool    `json:"featured,omitempty"`
	Popular     bool    `json:"popular"`
}

type Barber struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type TimeSlot struct {
	ID        int    `json:"id"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

var services = []Service{
	{ID: 1, Name: "Corte Masculino", Description: "Corte moderno e personalizado. Inclui lavagem, corte, finalização e dicas de manutenção.", Price: 25.00, DurationMin: 30, Category: "Cortes", Popular: true},
	{ID: 2, Name: "Corte Degradê", Description: "Corte com transição suave do comprimento. Técnica moderna que cria volume e movimento natural.", Price: 30.00, DurationMin: 35, Category: "Cortes", Featured: true, Popular: true},
	{ID: 3, Name: "Corte Pompadour", Description: "Corte clássico com volume na parte superior. Inclui modelagem e finalização.", Price: 35.00, DurationMin: 40, Category: "Cortes", Popular: true},
	{ID: 4, Name: "Corte Undercut", Description: "Corte com laterais e nuca raspadas. Contraste marcante entre as partes.", Price: 35.00, DurationMin: 35, Category: "Cortes", Popular: true},
	{ID: 5, Name: "Barba Tradicional", Description: "Acabamento e modelagem da barba com navalha. Inclui hidratação e alinhamento.", Price: 20.00, DurationMin: 20, Category: "Barba", Popular: true},
	{ID: 6, Name: "Barba Desenhada", Description: "Modelagem artística da barba com desenhos e formas personalizadas.", Price: 25.00, DurationMin: 25, Category: "Barba"},
	{ID: 7, Name: "Corte + Barba", Description: "Combo completo: corte masculino + barba tradicional.", Price: 39.90, DurationMin: 45, Category: "Combos", Featured: true, Popular: true},
	{ID: 8, Name: "Hidratação Capilar", Description: "Tratamento profundo para cabelos ressecados. Nutrição intensiva com produtos profissionais.", Price: 35.00, DurationMin: 40, Category: "Tratamentos"},
	{ID: 9, Name: "Pigmentação", Description: "Coloração natural para cabelos grisalhos ou brancos.", Price: 45.00, DurationMin: 60, Category: "Tratamentos"},
	{ID: 10, Name: "Sobrancelha", Description: "Design e alinhamento das sobrancelhas com pinça e navalha.", Price: 15.00, DurationMin: 15, Category: "Estética"},
	{ID: 11, Name: "Pacote Completo", Description: "Corte, barba, sobrancelha e hidratação em uma única sessão.", Price: 79.90, DurationMin: 90, Category: "Combos", Featured: true},
}

var barbers = []Barber{
	{ID: 1, Name: "João Silva", Specialty: "Cortes Modernos"},
	{ID: 2, Name: "Pedro Santos", Specialty: "Barbas"},
	{ID: 3, Name: "Carlos Oliveira", Specialty: "Técnicas Avançadas"},
}

var slots = []TimeSlot{
	{ID: 1, Time: "09:00", Available: true},
	{ID: 2, Time: "10:00", Available: true},
	{ID: 3, Time: "11:00", Available: false},
	{ID: 4, Time: "14:00", Available: true},
	{ID: 5, Time: "15:00", Available: true},
	{ID: 6, Time: "16:00", Available: true},
	{ID: 7, Time: "17:00", Available: false},
	{ID: 8, Time: "18:00", Available: true},
}

func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func Barbers() []Barber {
	out := make([]Barber, len(barbers))
	copy(out, barbers)
	return out
}

func Slots() []TimeSlot {
	out := make([]TimeSlot, len(slots))
	copy(out, slots)
	return out
}
