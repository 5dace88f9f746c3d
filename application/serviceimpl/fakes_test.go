package serviceimpl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"sync"
	"testing"
	"time"

	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/pkg/scheduler"
)

// ========== Category repository ==========

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	nextID     uint
	listErr    error
	listCalls  int
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: map[uint]*models.Category{}}
	for _, name := range names {
		r.create(&models.Category{Name: name})
	}
	return r
}

func (r *fakeCategoryRepo) create(category *models.Category) {
	r.nextID++
	category.ID = r.nextID
	copied := *category
	r.categories[category.ID] = &copied
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepo) getByName(name string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCategoryRepo) FirstOrCreateByName(ctx context.Context, name string) (*models.Category, error) {
	if c, err := r.getByName(name); err == nil {
		return c, nil
	}
	c := &models.Category{Name: name}
	r.create(c)
	return c, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	ids := make([]int, 0, len(r.categories))
	for id := range r.categories {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]*models.Category, 0, len(ids))
	for _, id := range ids {
		copied := *r.categories[uint(id)]
		out = append(out, &copied)
	}
	return out, nil
}

// ========== Menu repository ==========

type fakeMenuRepo struct {
	menus       map[uint]*models.Menu
	nextID      uint
	createErr   error
	createCalls int
	deleteCalls int
	listCalls   int
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{menus: map[uint]*models.Menu{}}
}

func (r *fakeMenuRepo) Create(ctx context.Context, menu *models.Menu) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	menu.ID = r.nextID
	if menu.Orderable == "" {
		menu.Orderable = models.OrderableYes
	}
	copied := *menu
	copied.Category = nil
	r.menus[menu.ID] = &copied
	return nil
}

func (r *fakeMenuRepo) GetByID(ctx context.Context, id uint) (*models.Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMenuRepo) Delete(ctx context.Context, menu *models.Menu) error {
	r.deleteCalls++
	if _, ok := r.menus[menu.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.menus, menu.ID)
	return nil
}

func (r *fakeMenuRepo) sorted(desc bool, keep func(*models.Menu) bool) []*models.Menu {
	var out []*models.Menu
	for _, m := range r.menus {
		if keep(m) {
			copied := *m
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].ID > out[j].ID
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *fakeMenuRepo) ListOrderable(ctx context.Context) ([]*models.Menu, error) {
	r.listCalls++
	return r.sorted(true, func(m *models.Menu) bool { return m.Orderable == models.OrderableYes }), nil
}

func (r *fakeMenuRepo) ListOrderableByCategory(ctx context.Context, categoryID uint) ([]*models.Menu, error) {
	return r.sorted(false, func(m *models.Menu) bool {
		return m.Orderable == models.OrderableYes && m.CategoryID != nil && *m.CategoryID == categoryID
	}), nil
}

func (r *fakeMenuRepo) ListImageRefs(ctx context.Context) ([]string, error) {
	var refs []string
	for _, m := range r.menus {
		if m.HasImage() {
			refs = append(refs, *m.ImageURL)
		}
	}
	return refs, nil
}

// ========== Image storage ==========

type fakeStorage struct {
	objects     map[string][]byte
	modified    map[string]time.Time
	uploadCalls int
	deleteCalls []string
	uploadErr   error
	deleteErr   error
	prefix      string // "" = local (ref คือ key)
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, modified: map[string]time.Time{}}
}

func (s *fakeStorage) Upload(ctx context.Context, file io.Reader, size int64, key string, contentType string) (string, error) {
	s.uploadCalls++
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.objects[key] = data
	s.modified[key] = time.Now()
	return s.URL(key), nil
}

func (s *fakeStorage) Delete(ctx context.Context, ref string) error {
	s.deleteCalls = append(s.deleteCalls, ref)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for key := range s.objects {
		if s.URL(key) == ref {
			delete(s.objects, key)
			delete(s.modified, key)
		}
	}
	return nil
}

func (s *fakeStorage) URL(key string) string {
	return s.prefix + key
}

func (s *fakeStorage) List(ctx context.Context) ([]ports.StoredObject, error) {
	var out []ports.StoredObject
	for key, data := range s.objects {
		out = append(out, ports.StoredObject{Key: key, Ref: s.URL(key), Size: int64(len(data)), LastModified: s.modified[key]})
	}
	return out, nil
}

func (s *fakeStorage) ProviderName() string { return "fake" }

// ========== Cache ==========

type fakeCache struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  error
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

// ========== Events ==========

type fakeEvents struct {
	registered []uint
	deleted    []uint
	err        error
}

func (e *fakeEvents) MenuRegistered(ctx context.Context, menu *models.Menu) error {
	e.registered = append(e.registered, menu.ID)
	return e.err
}

func (e *fakeEvents) MenuDeleted(ctx context.Context, menuID uint) error {
	e.deleted = append(e.deleted, menuID)
	return e.err
}

// ========== Scheduler ==========

type fakeScheduler struct {
	jobs map[string]func()
}

func (s *fakeScheduler) Start()          {}
func (s *fakeScheduler) Stop()           {}
func (s *fakeScheduler) IsRunning() bool { return true }
func (s *fakeScheduler) AddJob(id, cronExpr string, task func()) error {
	if s.jobs == nil {
		s.jobs = map[string]func(){}
	}
	if _, ok := s.jobs[id]; ok {
		return errors.New("duplicate job")
	}
	s.jobs[id] = task
	return nil
}
func (s *fakeScheduler) RemoveJob(id string) error     { delete(s.jobs, id); return nil }
func (s *fakeScheduler) ListJobs() []scheduler.JobInfo { return nil }

// ========== Helpers ==========

func intPtr(v int) *int { return &v }

// pngBytes มี PNG signature พอให้ mimetype ตรวจเจอ
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)

// newFileHeader สร้าง multipart.FileHeader จริงผ่าน multipart.Reader
func newFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)
	w.Close()

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}
