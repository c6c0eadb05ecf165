// Package store holds the booking state: the registered users, the
// appointment list and the signed-in user. It is the single authority over
// that state; every mutation goes through a method here and is mirrored to
// persistent storage as a whole-collection JSON snapshot.
package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"barbershop-booking-api/internal/model"
	"barbershop-booking-api/internal/storage"
)

// Storage keys, one JSON snapshot each.
const (
	sessionKey      = "current-session"
	appointmentsKey = "appointments"
	usersKey        = "users"
)

// adminUser is the built-in administrative account. It must be present in
// the user set even when a persisted snapshot omits it.
func adminUser() model.User {
	return model.User{
		ID:       "admin",
		Name:     "Administrador",
		Email:    "admin",
		Phone:    "(11) 99999-9999",
		Password: "admin",
		IsAdmin:  true,
	}
}

type Store struct {
	kv *storage.Store

	mu           sync.RWMutex
	loading      bool
	current      *model.User
	users        []model.User
	appointments []model.Appointment
}

func New(kv *storage.Store) *Store {
	return &Store{
		kv:      kv,
		loading: true,
		users:   []model.User{adminUser()},
	}
}

// Load reads the persisted session, appointment and user snapshots. Read or
// parse failures are logged and treated as "no prior state"; startup never
// fails here. Callers must not read store state until Load has returned.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok, err := s.kv.Get(ctx, sessionKey); err != nil {
		log.Printf("store: load session: %v", err)
	} else if ok {
		var u model.User
		if err := json.Unmarshal(raw, &u); err != nil {
			log.Printf("store: parse session: %v", err)
		} else {
			s.current = &u
		}
	}

	if raw, ok, err := s.kv.Get(ctx, appointmentsKey); err != nil {
		log.Printf("store: load appointments: %v", err)
	} else if ok {
		var apts []model.Appointment
		if err := json.Unmarshal(raw, &apts); err != nil {
			log.Printf("store: parse appointments: %v", err)
		} else {
			s.appointments = apts
		}
	}

	if raw, ok, err := s.kv.Get(ctx, usersKey); err != nil {
		log.Printf("store: load users: %v", err)
	} else if ok {
		var users []model.User
		if err := json.Unmarshal(raw, &users); err != nil {
			log.Printf("store: parse users: %v", err)
		} else {
			s.users = ensureAdmin(users)
		}
	}

	s.loading = false
}

// ensureAdmin injects the built-in admin at the head of the set when the
// snapshot lacks it.
func ensureAdmin(users []model.User) []model.User {
	for _, u := range users {
		if u.Email == "admin" {
			return users
		}
	}
	return append([]model.User{adminUser()}, users...)
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Current returns a copy of the signed-in user, or nil.
func (s *Store) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Appointments() []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// Authenticate signs in the user whose email and password match exactly.
// On a miss it returns false and leaves the session untouched.
func (s *Store) Authenticate(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email != email {
			continue
		}
		if s.users[i].Password != password {
			return false
		}
		u := s.users[i]
		s.current = &u
		// persistence failure leaves the in-memory session authoritative
		_ = s.persistSession(ctx)
		return true
	}
	return false
}

// Register creates a non-admin account and signs it in. It returns false
// when the email is already taken, or when persisting fails — in which case
// the in-memory user and session are rolled back so that a false return
// always means "no effect".
func (s *Store) Register(ctx context.Context, name, email, phone, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return false
		}
	}

	u := model.User{
		ID:       model.NewID(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	}

	prev := s.current
	s.users = append(s.users, u)
	s.current = &u

	if err := s.persistUsers(ctx); err != nil {
		s.users = s.users[:len(s.users)-1]
		s.current = prev
		return false
	}
	if err := s.persistSession(ctx); err != nil {
		s.users = s.users[:len(s.users)-1]
		s.current = prev
		return false
	}
	return true
}

// Logout clears the session and removes the persisted session key. Users
// and appointments are untouched.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	_ = s.persistSession(ctx)
}

// AppointmentInput is what the booking flow supplies; the store stamps
// identity, ownership and creation time itself.
type AppointmentInput struct {
	Date    string
	Time    string
	Barber  string
	Service string
	Price   float64
	Status  string
}

// CreateAppointment books a slot for the signed-in user and returns the new
// appointment. Without an active session it does nothing and returns nil.
// The date, time and barber are taken verbatim; availability checks belong
// to the callers.
func (s *Store) CreateAppointment(ctx context.Context, in AppointmentInput) *model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	apt := model.Appointment{
		ID:        model.NewID(),
		UserID:    s.current.ID,
		UserName:  s.current.Name,
		UserPhone: s.current.Phone,
		Date:      in.Date,
		Time:      in.Time,
		Barber:    in.Barber,
		Service:   in.Service,
		Price:     in.Price,
		Status:    in.Status,
		CreatedAt: time.Now(),
	}
	s.appointments = append(s.appointments, apt)
	_ = s.persistAppointments(ctx)
	return &apt
}

func (s *Store) CancelAppointment(ctx context.Context, id string) {
	s.setStatus(ctx, id, model.StatusCancelled)
}

func (s *Store) CompleteAppointment(ctx context.Context, id string) {
	s.setStatus(ctx, id, model.StatusCompleted)
}

// setStatus rewrites the status of the matching appointment unconditionally
// and silently ignores unknown ids.
func (s *Store) setStatus(ctx context.Context, id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].Status = status
			_ = s.persistAppointments(ctx)
			return
		}
	}
}

// DeleteAppointment removes the matching appointment. Unknown ids are a
// silent no-op.
func (s *Store) DeleteAppointment(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			_ = s.persistAppointments(ctx)
			return
		}
	}
}

// RescheduleAppointment rewrites date and time on the matching appointment.
// The new slot is not validated.
func (s *Store) RescheduleAppointment(ctx context.Context, id, newDate, newTime string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].Date = newDate
			s.appointments[i].Time = newTime
			_ = s.persistAppointments(ctx)
			return
		}
	}
}

// AppointmentsForUser returns the user's appointments in insertion order.
// Sorting and status filtering are left to the callers.
func (s *Store) AppointmentsForUser(userID string) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Appointment
	for _, a := range s.appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) persistSession(ctx context.Context) error {
	if s.current == nil {
		if err := s.kv.Delete(ctx, sessionKey); err != nil {
			log.Printf("store: clear session: %v", err)
			return err
		}
		return nil
	}
	raw, err := json.Marshal(s.current)
	if err == nil {
		err = s.kv.Put(ctx, sessionKey, raw)
	}
	if err != nil {
		log.Printf("store: save session: %v", err)
	}
	return err
}

func (s *Store) persistUsers(ctx context.Context) error {
	raw, err := json.Marshal(ensureAdmin(s.users))
	if err == nil {
		err = s.kv.Put(ctx, usersKey, raw)
	}
	if err != nil {
		log.Printf("store: save users: %v", err)
	}
	return err
}

func (s *Store) persistAppointments(ctx context.Context) error {
	raw, err := json.Marshal(s.appointments)
	if err == nil {
		err = s.kv.Put(ctx, appointmentsKey, raw)
	}
	if err != nil {
		log.Printf("store: save appointments: %v", err)
	}
	return err
}
