package avatar

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/2beens/fitgenius/internal/docstore"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/internal/users"
)

const (
	renderBaseURL     = "https://models.readyplayer.me"
	DefaultRenderSize = 512

	accountCollection = "avatar"
	accountDocID      = "account"
	OutfitsCollection = "unlockedOutfits"
)

var renderPoses = []string{"power-stance", "relaxed", "standing", "thumbs-up"}

var (
	ErrInvalidExportURL = errors.New("invalid avatar export url")
	ErrNoAvatar         = errors.New("no avatar set")
	ErrInvalidSize      = errors.New("invalid render size")
)

// IDFromExportURL extracts the avatar id from an exported model url,
// e.g. https://models.readyplayer.me/64bfa15f0e72c63d7c3934a6.glb.
func IDFromExportURL(exportURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(exportURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidExportURL, exportURL)
	}
	base := path.Base(u.Path)
	id := strings.TrimSuffix(base, path.Ext(base))
	if id == "" || id == "." || id == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidExportURL, exportURL)
	}
	return id, nil
}

// RenderURL returns a full body png render of the avatar in a random pose.
func RenderURL(avatarID string, size int) string {
	return renderURL(avatarID, size, renderPoses[rand.IntN(len(renderPoses))])
}

func renderURL(avatarID string, size int, pose string) string {
	q := url.Values{}
	q.Set("pose", pose)
	q.Set("camera", "fullbody")
	q.Set("quality", "100")
	q.Set("size", fmt.Sprint(size))
	return fmt.Sprintf("%s/%s.png?%s", renderBaseURL, url.PathEscape(avatarID), q.Encode())
}

type Avatar struct {
	ID           string `json:"id"`
	VendorUserID string `json:"vendorUserId,omitempty"`
	RenderURL    string `json:"renderUrl"`
}

type UnlockedOutfit struct {
	AssetID    string    `json:"assetId"`
	Date       string    `json:"date"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

//go:generate mockgen -source=$GOFILE -destination=avatar_mocks_test.go -package=avatar_test

type profileService interface {
	GetProfile(ctx context.Context, uid string) (*users.Profile, error)
	SetAvatarID(ctx context.Context, uid, avatarID string) error
}

type Service struct {
	profiles profileService
	store    docstore.Store
}

func NewService(profiles profileService, store docstore.Store) *Service {
	return &Service{
		profiles: profiles,
		store:    store,
	}
}

func accountRef(uid string) docstore.Ref {
	return docstore.Ref{
		Collection: docstore.UserCollection(uid, accountCollection),
		ID:         accountDocID,
	}
}

// SetFromExport stores the avatar exported by the avatar creator. The vendor
// user id is optional; outfits can only be unlocked once it is known.
func (s *Service) SetFromExport(ctx context.Context, uid, exportURL, vendorUserID string) (_ *Avatar, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.avatar.setFromExport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	avatarID, err := IDFromExportURL(exportURL)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.SetAvatarID(ctx, uid, avatarID); err != nil {
		return nil, fmt.Errorf("set avatar id: %w", err)
	}

	vendorUserID = strings.TrimSpace(vendorUserID)
	if vendorUserID != "" {
		if err := s.store.Set(ctx, accountRef(uid), map[string]any{
			"vendorUserId": vendorUserID,
		}); err != nil {
			return nil, fmt.Errorf("store vendor user: %w", err)
		}
	}

	return &Avatar{
		ID:           avatarID,
		VendorUserID: vendorUserID,
		RenderURL:    RenderURL(avatarID, DefaultRenderSize),
	}, nil
}

func (s *Service) Get(ctx context.Context, uid string, size int) (_ *Avatar, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.avatar.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if size <= 0 || size > 1024 {
		return nil, ErrInvalidSize
	}

	profile, err := s.profiles.GetProfile(ctx, uid)
	if errors.Is(err, users.ErrProfileNotFound) {
		return nil, ErrNoAvatar
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile.AvatarID == "" {
		return nil, ErrNoAvatar
	}

	vendorUserID, err := s.VendorUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &Avatar{
		ID:           profile.AvatarID,
		VendorUserID: vendorUserID,
		RenderURL:    RenderURL(profile.AvatarID, size),
	}, nil
}

// VendorUserID returns the avatar platform user id, empty if never exported.
func (s *Service) VendorUserID(ctx context.Context, uid string) (string, error) {
	doc, err := s.store.Get(ctx, accountRef(uid))
	if errors.Is(err, docstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get avatar account: %w", err)
	}
	return docstore.AsString(doc.Data["vendorUserId"]), nil
}

// UnlockedOutfits lists the outfits unlocked by claimed rewards, latest first.
func (s *Service) UnlockedOutfits(ctx context.Context, uid string) (_ []UnlockedOutfit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.avatar.unlockedOutfits")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	docs, err := s.store.List(ctx, docstore.UserCollection(uid, OutfitsCollection))
	if err != nil {
		return nil, fmt.Errorf("list outfits: %w", err)
	}

	outfits := make([]UnlockedOutfit, 0, len(docs))
	for _, doc := range docs {
		outfits = append(outfits, UnlockedOutfit{
			AssetID:    doc.ID,
			Date:       docstore.AsString(doc.Data["date"]),
			UnlockedAt: docstore.AsTime(doc.Data["unlockedAt"]),
		})
	}
	sortOutfits(outfits)

	return outfits, nil
}
