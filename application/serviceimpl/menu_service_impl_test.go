package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/domain/services"
)

type menuFixture struct {
	svc        services.MenuService
	menus      *fakeMenuRepo
	categories *fakeCategoryRepo
	storage    *fakeStorage
	events     *fakeEvents
	cache      *fakeCache
}

func newMenuFixture(withCache bool) *menuFixture {
	f := &menuFixture{
		menus:      newFakeMenuRepo(),
		categories: newFakeCategoryRepo("Meal", "Dessert", "Beverage"),
		storage:    newFakeStorage(),
		events:     &fakeEvents{},
	}
	var cache ports.CachePort
	if withCache {
		f.cache = newFakeCache()
		cache = f.cache
	}
	f.svc = NewMenuService(f.menus, f.categories, f.storage, f.events, cache, MenuServiceConfig{MaxImageSize: 1024})
	return f
}

func (f *menuFixture) seed(name string, categoryID uint, orderable string) *models.Menu {
	m := &models.Menu{Name: name, Price: 1000, CategoryID: &categoryID, Orderable: orderable}
	f.menus.Create(context.Background(), m)
	return m
}

const beverageID = 3

func TestRegisterWithoutImage(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(false)

	menu, err := f.svc.Register(ctx, &dto.RegisterMenuRequest{
		Name: "Latte", Price: intPtr(4000), CategoryID: beverageID, Stock: 15,
	}, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if menu.ID == 0 {
		t.Error("id not assigned")
	}
	if menu.ImageURL != nil {
		t.Errorf("ImageURL = %v, want nil", *menu.ImageURL)
	}
	if menu.Orderable != models.OrderableYes {
		t.Errorf("Orderable = %q, want Y", menu.Orderable)
	}
	if menu.Description != nil {
		t.Errorf("empty description should be stored as null")
	}
	if menu.Category == nil || menu.Category.Name != "Beverage" {
		t.Errorf("Category = %+v, want Beverage", menu.Category)
	}
	if f.storage.uploadCalls != 0 || len(f.storage.deleteCalls) != 0 {
		t.Errorf("storage touched without image: uploads=%d deletes=%d", f.storage.uploadCalls, len(f.storage.deleteCalls))
	}
	if len(f.events.registered) != 1 || f.events.registered[0] != menu.ID {
		t.Errorf("registered events = %v", f.events.registered)
	}
}

func TestRegisterWithEmptyImageSkipsStorage(t *testing.T) {
	f := newMenuFixture(false)
	empty := newFileHeader(t, "empty.png", "image/png", nil)

	if _, err := f.svc.Register(context.Background(), &dto.RegisterMenuRequest{Name: "Tea", CategoryID: beverageID}, empty); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if f.storage.uploadCalls != 0 {
		t.Errorf("uploadCalls = %d, want 0", f.storage.uploadCalls)
	}
}

func TestRegisterUnknownCategory(t *testing.T) {
	f := newMenuFixture(false)
	image := newFileHeader(t, "latte.png", "image/png", pngBytes)

	_, err := f.svc.Register(context.Background(), &dto.RegisterMenuRequest{Name: "Latte", CategoryID: 99}, image)
	if !errors.Is(err, services.ErrCategoryNotFound) {
		t.Fatalf("err = %v, want ErrCategoryNotFound", err)
	}
	if f.menus.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", f.menus.createCalls)
	}
	if f.storage.uploadCalls != 0 {
		t.Errorf("uploadCalls = %d, want 0", f.storage.uploadCalls)
	}
}

func TestRegisterWithImage(t *testing.T) {
	f := newMenuFixture(false)
	f.storage.prefix = "https://menus.s3.ap-northeast-2.amazonaws.com/"
	image := newFileHeader(t, "Latte.PNG", "image/png", pngBytes)

	menu, err := f.svc.Register(context.Background(), &dto.RegisterMenuRequest{
		Name: "Latte", Price: intPtr(4000), Description: "milk coffee", CategoryID: beverageID,
	}, image)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if f.storage.uploadCalls != 1 {
		t.Fatalf("uploadCalls = %d, want 1", f.storage.uploadCalls)
	}
	if menu.ImageURL == nil || !strings.HasPrefix(*menu.ImageURL, f.storage.prefix) || !strings.HasSuffix(*menu.ImageURL, ".png") {
		t.Errorf("ImageURL = %v, want storage reference ending in .png", menu.ImageURL)
	}
	if menu.Description == nil || *menu.Description != "milk coffee" {
		t.Errorf("Description = %v", menu.Description)
	}
	for key, data := range f.storage.objects {
		if string(data) != string(pngBytes) {
			t.Errorf("stored %s has %d bytes, want full upload", key, len(data))
		}
	}
}

func TestRegisterRejectsNonImages(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		wantErr     error
	}{
		{"declared text", "menu.txt", "text/plain", []byte("hello"), services.ErrNotAnImage},
		{"spoofed image header", "fake.png", "image/png", []byte("just some text, not a picture"), services.ErrNotAnImage},
		{"too large", "big.png", "image/png", append(pngBytes, make([]byte, 2048)...), services.ErrImageTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMenuFixture(false)
			image := newFileHeader(t, tt.filename, tt.contentType, tt.data)

			_, err := f.svc.Register(context.Background(), &dto.RegisterMenuRequest{Name: "X", CategoryID: beverageID}, image)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if f.storage.uploadCalls != 0 || f.menus.createCalls != 0 {
				t.Errorf("uploads=%d creates=%d, want none", f.storage.uploadCalls, f.menus.createCalls)
			}
		})
	}
}

func TestRegisterRollsBackImageWhenInsertFails(t *testing.T) {
	f := newMenuFixture(false)
	f.menus.createErr = errors.New("db down")
	image := newFileHeader(t, "latte.png", "image/png", pngBytes)

	_, err := f.svc.Register(context.Background(), &dto.RegisterMenuRequest{Name: "Latte", CategoryID: beverageID}, image)
	if err == nil {
		t.Fatal("expected error")
	}
	if f.storage.uploadCalls != 1 || len(f.storage.deleteCalls) != 1 {
		t.Errorf("uploads=%d deletes=%d, want 1 and 1", f.storage.uploadCalls, len(f.storage.deleteCalls))
	}
	if len(f.storage.objects) != 0 {
		t.Errorf("uploaded image not rolled back: %v", f.storage.objects)
	}
	if len(f.events.registered) != 0 {
		t.Error("event published for failed registration")
	}
}

func TestListOrderableExcludesHiddenAndSortsDescending(t *testing.T) {
	f := newMenuFixture(false)
	f.seed("Latte", beverageID, models.OrderableYes)
	f.seed("Secret", beverageID, models.OrderableNo)
	f.seed("Cake", 2, models.OrderableYes)
	f.seed("Mocha", beverageID, models.OrderableYes)

	menus, err := f.svc.ListOrderable(context.Background())
	if err != nil {
		t.Fatalf("ListOrderable: %v", err)
	}
	if len(menus) != 3 {
		t.Fatalf("got %d menus, want 3", len(menus))
	}
	for i, m := range menus {
		if m.Orderable != models.OrderableYes {
			t.Errorf("menu %s has orderable %q", m.Name, m.Orderable)
		}
		if i > 0 && menus[i-1].ID <= m.ID {
			t.Errorf("not strictly descending at %d: %d then %d", i, menus[i-1].ID, m.ID)
		}
	}
}

func TestListByCategory(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(false)
	latte := f.seed("Latte", beverageID, models.OrderableYes)
	f.seed("Cake", 2, models.OrderableYes)
	mocha := f.seed("Mocha", beverageID, models.OrderableYes)

	menus, err := f.svc.ListByCategory(ctx, beverageID)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(menus) != 2 || menus[0].ID != latte.ID || menus[1].ID != mocha.ID {
		t.Errorf("ListByCategory = %+v", menus)
	}

	if _, err := f.svc.ListByCategory(ctx, 42); !errors.Is(err, services.ErrCategoryNotFound) {
		t.Errorf("unknown category err = %v", err)
	}
}

func TestDeleteMissingMenuNeverCallsStoreDelete(t *testing.T) {
	f := newMenuFixture(false)

	err := f.svc.Delete(context.Background(), 123)
	if !errors.Is(err, services.ErrMenuNotFound) {
		t.Fatalf("err = %v, want ErrMenuNotFound", err)
	}
	if f.menus.deleteCalls != 0 {
		t.Errorf("store delete called %d times", f.menus.deleteCalls)
	}
	if len(f.storage.deleteCalls) != 0 {
		t.Errorf("image delete called %v", f.storage.deleteCalls)
	}
}

func TestDeleteWithImageCallsImageDeleteOnce(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
	}{
		{"image delete ok", nil},
		{"image delete fails", errors.New("bucket gone")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newMenuFixture(false)
			image := newFileHeader(t, "latte.png", "image/png", pngBytes)
			menu, err := f.svc.Register(ctx, &dto.RegisterMenuRequest{Name: "Latte", CategoryID: beverageID}, image)
			if err != nil {
				t.Fatalf("Register: %v", err)
			}
			f.storage.deleteErr = tt.deleteErr

			if err := f.svc.Delete(ctx, menu.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if len(f.storage.deleteCalls) != 1 || f.storage.deleteCalls[0] != *menu.ImageURL {
				t.Errorf("image deletes = %v, want exactly [%s]", f.storage.deleteCalls, *menu.ImageURL)
			}
			if _, err := f.svc.GetByID(ctx, menu.ID); !errors.Is(err, services.ErrMenuNotFound) {
				t.Errorf("menu still present: %v", err)
			}
			if len(f.events.deleted) != 1 {
				t.Errorf("deleted events = %v", f.events.deleted)
			}
		})
	}
}

func TestDeleteWithoutImageSkipsStorage(t *testing.T) {
	f := newMenuFixture(false)
	m := f.seed("Tea", beverageID, models.OrderableYes)

	if err := f.svc.Delete(context.Background(), m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.storage.deleteCalls) != 0 {
		t.Errorf("image deletes = %v", f.storage.deleteCalls)
	}
}

func TestLatteScenario(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(false)

	created, err := f.svc.Register(ctx, &dto.RegisterMenuRequest{
		Name: "Latte", Price: intPtr(4000), CategoryID: beverageID, Stock: 15,
	}, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := f.svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Latte" || got.Price != 4000 || got.Stock != 15 || *got.CategoryID != beverageID || got.ImageURL != nil {
		t.Errorf("GetByID = %+v, want the registered Latte", got)
	}

	if err := f.svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.svc.GetByID(ctx, created.ID); !errors.Is(err, services.ErrMenuNotFound) {
		t.Errorf("GetByID after delete err = %v, want ErrMenuNotFound", err)
	}
}

func TestMenuListIsCachedAndInvalidated(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(true)
	f.seed("Latte", beverageID, models.OrderableYes)

	for i := 0; i < 3; i++ {
		if _, err := f.svc.ListOrderable(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if f.menus.listCalls != 1 {
		t.Errorf("repository listed %d times, want 1 (cached)", f.menus.listCalls)
	}

	if _, err := f.svc.Register(ctx, &dto.RegisterMenuRequest{Name: "Mocha", CategoryID: beverageID}, nil); err != nil {
		t.Fatal(err)
	}
	menus, err := f.svc.ListOrderable(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(menus) != 2 || f.menus.listCalls != 2 {
		t.Errorf("after register: %d menus, %d repo lists; want 2 and 2", len(menus), f.menus.listCalls)
	}
}

func TestMenuListFallsBackWhenCacheFails(t *testing.T) {
	f := newMenuFixture(true)
	f.cache.getErr = errors.New("redis down")
	f.seed("Latte", beverageID, models.OrderableYes)

	menus, err := f.svc.ListOrderable(context.Background())
	if err != nil || len(menus) != 1 {
		t.Fatalf("ListOrderable = %d, %v", len(menus), err)
	}
}

func TestEventFailureDoesNotFailRegister(t *testing.T) {
	f := newMenuFixture(false)
	f.events.err = errors.New("nats down")

	if _, err := f.svc.Register(context.Background(), &dto.RegisterMenuRequest{Name: "Latte", CategoryID: beverageID}, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
}
