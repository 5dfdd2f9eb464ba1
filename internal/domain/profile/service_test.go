package profile_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/arpitsharma-bit/peextrap/internal/domain/profile"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeProfileRepository struct {
	stored map[ulid.ULID]*profile.Profile
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{stored: make(map[ulid.ULID]*profile.Profile)}
}

func (f *fakeProfileRepository) GetByUserID(ctx context.Context, userID ulid.ULID) (*profile.Profile, error) {
	if p, ok := f.stored[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	f.stored[p.UserId] = p
	return nil
}

type fakeUserRepository struct {
	users map[ulid.ULID]*user.User
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }
func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, appErrors.ErrUserNotFound.WithError(gorm.ErrRecordNotFound)
}
func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound.WithError(gorm.ErrRecordNotFound)
}

type fakeStorage struct {
	saved   map[string][]byte
	removed []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (f *fakeStorage) Save(ctx context.Context, filename string, data []byte) (string, error) {
	f.saved[filename] = data
	return "/uploads/" + filename, nil
}

func (f *fakeStorage) Remove(ctx context.Context, filename string) error {
	f.removed = append(f.removed, filename)
	delete(f.saved, filename)
	return nil
}

type testEnv struct {
	service  *profile.Service
	profiles *fakeProfileRepository
	storage  *fakeStorage
	userID   ulid.ULID
}

func newTestEnv() *testEnv {
	userID := pkg.GenerateULIDObject()
	users := &fakeUserRepository{users: map[ulid.ULID]*user.User{
		userID: {Id: userID, Name: "Jordan Reyes"},
	}}
	profiles := newFakeProfileRepository()
	storage := newFakeStorage()

	return &testEnv{
		service:  profile.NewService(profiles, user.NewService(users), storage),
		profiles: profiles,
		storage:  storage,
		userID:   userID,
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.Bytes()
}

func TestGetProfileCreatesDefault(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	prof, err := env.service.GetProfile(context.Background(), env.userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.DisplayName != "Jordan Reyes" {
		t.Fatalf("expected the display name to fall back to the user name, got %q", prof.DisplayName)
	}
	if prof.Currency != "USD" {
		t.Fatalf("expected USD when no timezone is known, got %s", prof.Currency)
	}
	if prof.Country != "United States" {
		t.Fatalf("expected the default country, got %q", prof.Country)
	}
	if _, ok := env.profiles.stored[env.userID]; !ok {
		t.Fatal("expected the default profile to be persisted")
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	_, err := env.service.GetProfile(context.Background(), pkg.GenerateULIDObject())
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrUserNotFound.Code {
		t.Fatalf("expected USER_NOT_FOUND, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	name := "JR"
	code := "eur"
	country := " Germany "

	prof, err := env.service.UpdateProfile(context.Background(), env.userID, profile.UpdateInput{
		DisplayName: &name,
		Currency:    &code,
		Country:     &country,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.DisplayName != "JR" {
		t.Fatalf("expected the display name to change, got %q", prof.DisplayName)
	}
	if prof.Currency != "EUR" {
		t.Fatalf("expected the currency code to be normalized, got %s", prof.Currency)
	}
	if prof.Country != "Germany" {
		t.Fatalf("expected a trimmed country, got %q", prof.Country)
	}
}

func TestUpdateProfileKeepsCountryWhenOmitted(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	country := "India"
	if _, err := env.service.UpdateProfile(context.Background(), env.userID, profile.UpdateInput{Country: &country}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "JR"
	prof, err := env.service.UpdateProfile(context.Background(), env.userID, profile.UpdateInput{DisplayName: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.Country != "India" {
		t.Fatalf("country must survive an update that omits it, got %q", prof.Country)
	}
}

func TestUpdateProfileEmptyCountry(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	country := "   "

	_, err := env.service.UpdateProfile(context.Background(), env.userID, profile.UpdateInput{Country: &country})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestUpdateProfileUnsupportedCurrency(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	code := "XXX"

	_, err := env.service.UpdateProfile(context.Background(), env.userID, profile.UpdateInput{Currency: &code})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestUploadAvatar(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	prof, err := env.service.UploadAvatar(context.Background(), env.userID, testPNG(t, 40, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.AvatarURL == "" {
		t.Fatal("expected an avatar URL")
	}
	if !strings.HasSuffix(prof.AvatarURL, ".png") {
		t.Fatalf("expected a png avatar, got %s", prof.AvatarURL)
	}
	if len(env.storage.saved) != 1 {
		t.Fatalf("expected one stored file, got %d", len(env.storage.saved))
	}
}

func TestUploadAvatarReplacesPrevious(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	first, err := env.service.UploadAvatar(context.Background(), env.userID, testPNG(t, 40, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstURL := first.AvatarURL

	if _, err := env.service.UploadAvatar(context.Background(), env.userID, testPNG(t, 20, 20)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(env.storage.removed) != 1 {
		t.Fatalf("expected the previous avatar to be removed, got %v", env.storage.removed)
	}
	if !strings.HasSuffix(firstURL, "/"+env.storage.removed[0]) {
		t.Fatalf("removed the wrong file: %s vs %s", firstURL, env.storage.removed[0])
	}
}

func TestUploadAvatarValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "over the size limit", data: make([]byte, profile.MaxAvatarBytes+1)},
		{name: "not an image", data: []byte("plain text")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			_, err := env.service.UploadAvatar(context.Background(), env.userID, tt.data)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestFavicon(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	icon, err := env.service.Favicon(context.Background(), env.userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(icon))
	if err != nil {
		t.Fatalf("favicon is not a valid png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("expected a 32x32 icon, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestInitials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "Jordan Reyes", want: "JR"},
		{name: "single word", in: "jordan", want: "J"},
		{name: "three words takes first and last", in: "Jordan van Reyes", want: "JR"},
		{name: "empty", in: "   ", want: "?"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := profile.Initials(tt.in); got != tt.want {
				t.Fatalf("Initials(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
