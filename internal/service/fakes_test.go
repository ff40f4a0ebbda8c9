package service

import (
	"context"
	"errors"
	"sync"

	"temanikan/internal/models"
	"temanikan/internal/repository"

	"github.com/shopspring/decimal"
)

// fakeEventRepo records appended events and answers List from a fixed slice.
type fakeEventRepo struct {
	mu       sync.Mutex
	appended []models.ActivityEvent
	appendFn func(models.ActivityEvent) error

	gotQuery  repository.EventQuery
	listCalls int
	events    []models.ActivityEvent
	err       error
}

func (f *fakeEventRepo) Append(_ context.Context, e models.ActivityEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendFn != nil {
		if err := f.appendFn(e); err != nil {
			return err
		}
	}
	f.appended = append(f.appended, e)
	return nil
}

func (f *fakeEventRepo) List(_ context.Context, q repository.EventQuery) ([]models.ActivityEvent, error) {
	f.listCalls++
	f.gotQuery = q
	return f.events, f.err
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

// fakeAuthRepo is an in-memory users table.
type fakeAuthRepo struct {
	users     map[string]models.User
	nextID    int
	createErr error
	getErr    error
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: map[string]models.User{}, nextID: 1}
}

func (f *fakeAuthRepo) Create(_ context.Context, u models.User) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if _, ok := f.users[u.Email]; ok {
		return 0, repository.ErrEmailTaken
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.Email] = u
	return u.ID, nil
}

func (f *fakeAuthRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type fakeCatalogRepo struct {
	gotFilter repository.FishFilter
	fish      []models.Fish
	products  []models.Product
	err       error
}

func (f *fakeCatalogRepo) ListFish(_ context.Context, flt repository.FishFilter) ([]models.Fish, error) {
	f.gotFilter = flt
	return f.fish, f.err
}

func (f *fakeCatalogRepo) ProductCategories(context.Context) ([]models.ProductCategory, error) {
	return []models.ProductCategory{{ID: "robot", Name: "Robot Pembersih", Count: 24}}, f.err
}

func (f *fakeCatalogRepo) Products(context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogRepo) ForumCategories(context.Context) ([]models.ForumCategory, error) {
	return []models.ForumCategory{{ID: "freshwater", Name: "Air Tawar"}}, f.err
}

func (f *fakeCatalogRepo) ForumTopics(context.Context) ([]models.ForumTopic, error) {
	return []models.ForumTopic{{ID: 1, Title: "Cupang tidak mau makan"}}, f.err
}

func (f *fakeCatalogRepo) GuideCategories(context.Context) ([]models.GuideCategory, error) {
	return []models.GuideCategory{{ID: "beginner", Name: "Panduan Pemula"}}, f.err
}

func (f *fakeCatalogRepo) Guides(context.Context) ([]models.Guide, error) {
	return []models.Guide{{ID: 1, Title: "Setup Akuarium Pertama"}}, f.err
}

func (f *fakeCatalogRepo) Articles(context.Context) ([]models.Article, error) {
	return []models.Article{{ID: 1, Title: "Merawat Cupang"}}, f.err
}

type fakeAdminRepo struct{ err error }

func (f *fakeAdminRepo) RecentUsers(context.Context) ([]models.AdminUserRow, error) {
	return []models.AdminUserRow{{ID: 1, Name: "Ahmad", Role: models.RoleMember}}, f.err
}

func (f *fakeAdminRepo) RecentPosts(context.Context) ([]models.AdminPostRow, error) {
	return []models.AdminPostRow{{ID: 1, Title: "Tips"}}, f.err
}

func (f *fakeAdminRepo) PendingProducts(context.Context) ([]models.PendingProduct, error) {
	return []models.PendingProduct{{ID: 1, Name: "Heater", Price: decimal.NewFromInt(250000)}}, f.err
}

type fakeMonitoringRepo struct {
	devices   []models.Device
	schedules map[int]models.CleaningSchedule
	err       error
}

func newFakeMonitoringRepo() *fakeMonitoringRepo {
	return &fakeMonitoringRepo{
		devices: []models.Device{
			{ID: "ph-sensor", Name: "Sensor pH", Status: models.DeviceOnline},
			{ID: "robot", Name: "Robot Pembersih", Status: models.DeviceOnline},
		},
		schedules: map[int]models.CleaningSchedule{
			1: {ID: 1, Day: "Senin", Time: "08:00", Type: "Pembersihan Kaca", Enabled: true},
		},
	}
}

func (f *fakeMonitoringRepo) Devices(context.Context) ([]models.Device, error) {
	return f.devices, f.err
}

func (f *fakeMonitoringRepo) Schedules(context.Context) ([]models.CleaningSchedule, error) {
	out := make([]models.CleaningSchedule, 0, len(f.schedules))
	for _, s := range f.schedules {
		out = append(out, s)
	}
	return out, f.err
}

func (f *fakeMonitoringRepo) ToggleSchedule(_ context.Context, id int) (models.CleaningSchedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return models.CleaningSchedule{}, repository.ErrScheduleNotFound
	}
	s.Enabled = !s.Enabled
	f.schedules[id] = s
	return s, nil
}

// fakeControlsRepo keeps the controls row in memory.
type fakeControlsRepo struct {
	mu      sync.Mutex
	row     models.AquariumControls
	saves   int
	saveErr error
}

func (f *fakeControlsRepo) Save(_ context.Context, c models.AquariumControls) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	c.ID = 1
	f.row = c
	return nil
}

func (f *fakeControlsRepo) Load(context.Context) (models.AquariumControls, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.row, nil
}

func (f *fakeControlsRepo) current() models.AquariumControls {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.row
}

var errBoom = errors.New("boom")
