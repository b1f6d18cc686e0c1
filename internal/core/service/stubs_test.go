package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

type stubUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.Errorf(domain.ErrDuplicateIdentity, "username already exists")
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func (r *stubUserRepo) seed(u *domain.User) *domain.User {
	created, _ := r.Create(context.Background(), u)
	return created
}

type stubCompanyRepo struct {
	nextID    int64
	companies map[int64]*domain.Company
	lastQuery ports.CompanySearch
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{companies: make(map[int64]*domain.Company)}
}

func (r *stubCompanyRepo) Create(_ context.Context, c *domain.Company) (*domain.Company, error) {
	r.nextID++
	stored := *c
	stored.ID = r.nextID
	r.companies[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, c *domain.Company) error {
	if _, ok := r.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *c
	r.companies[c.ID] = &stored
	return nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id int64) (*domain.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *stubCompanyRepo) ExistsByRegistrationNumber(_ context.Context, number string) (bool, error) {
	for _, c := range r.companies {
		if c.RegistrationNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCompanyRepo) List(_ context.Context) ([]*domain.Company, error) {
	out := make([]*domain.Company, 0, len(r.companies))
	for _, c := range r.companies {
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

func (r *stubCompanyRepo) Search(_ context.Context, q ports.CompanySearch) ([]*domain.Company, int64, error) {
	r.lastQuery = q
	var matched []*domain.Company
	for _, c := range r.companies {
		if q.CompanyName != "" && !strings.Contains(strings.ToLower(c.CompanyName), strings.ToLower(q.CompanyName)) {
			continue
		}
		cc := *c
		matched = append(matched, &cc)
	}
	return matched, int64(len(matched)), nil
}

func (r *stubCompanyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.companies, id)
	return nil
}

type stubDriverRepo struct {
	nextID  int64
	drivers map[int64]*domain.Driver
}

func newStubDriverRepo() *stubDriverRepo {
	return &stubDriverRepo{drivers: make(map[int64]*domain.Driver)}
}

func (r *stubDriverRepo) Create(_ context.Context, d *domain.Driver) (*domain.Driver, error) {
	r.nextID++
	stored := *d
	stored.ID = r.nextID
	r.drivers[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubDriverRepo) Update(_ context.Context, d *domain.Driver) error {
	if _, ok := r.drivers[d.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *d
	r.drivers[d.ID] = &stored
	return nil
}

func (r *stubDriverRepo) FindByID(_ context.Context, id int64) (*domain.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *d
	return &out, nil
}

func (r *stubDriverRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, d := range r.drivers {
		if d.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubDriverRepo) ExistsByLicenseNumber(_ context.Context, number string) (bool, error) {
	for _, d := range r.drivers {
		if d.LicenseNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubDriverRepo) List(_ context.Context) ([]*domain.Driver, error) {
	out := make([]*domain.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		dd := *d
		out = append(out, &dd)
	}
	return out, nil
}

func (r *stubDriverRepo) Search(_ context.Context, _ ports.DriverSearch) ([]*domain.Driver, int64, error) {
	out, _ := r.List(context.Background())
	return out, int64(len(out)), nil
}

func (r *stubDriverRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.drivers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.drivers, id)
	return nil
}

// stubThrottle locks a username out after max recorded failures.
type stubThrottle struct {
	max      int
	failures map[string]int
	err      error
}

func newStubThrottle(max int) *stubThrottle {
	return &stubThrottle{max: max, failures: make(map[string]int)}
}

func (t *stubThrottle) Allow(_ context.Context, username string) (bool, error) {
	if t.err != nil {
		return false, t.err
	}
	return t.failures[username] < t.max, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	if t.err != nil {
		return t.err
	}
	t.failures[username]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, username string) error {
	delete(t.failures, username)
	return t.err
}
