package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitgenius/internal/docstore"
	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var _ plans.RewardHook = (*OutfitRewarder)(nil)

var (
	ErrNoVendorUser = errors.New("avatar vendor user not known")
	ErrUnlockFailed = errors.New("outfit unlock failed")
)

type unlockRequest struct {
	Data unlockData `json:"data"`
}

type unlockData struct {
	UserID string `json:"userId"`
}

type NewOutfitRewarderParams struct {
	Avatars        *Service
	Store          docstore.Store
	APIBaseURL     string
	APIKey         string
	OutfitAssets   []string
	HttpClient     *http.Client
	MetricsManager *metrics.Manager
}

// OutfitRewarder unlocks a random outfit on the avatar platform when a day
// reward is claimed.
type OutfitRewarder struct {
	avatars        *Service
	store          docstore.Store
	apiBaseURL     string
	apiKey         string
	outfitAssets   []string
	httpClient     *http.Client
	metricsManager *metrics.Manager
	pick           func(n int) int
	now            func() time.Time
}

func NewOutfitRewarder(params NewOutfitRewarderParams) *OutfitRewarder {
	httpClient := params.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &OutfitRewarder{
		avatars:        params.Avatars,
		store:          params.Store,
		apiBaseURL:     strings.TrimSuffix(params.APIBaseURL, "/"),
		apiKey:         params.APIKey,
		outfitAssets:   params.OutfitAssets,
		httpClient:     httpClient,
		metricsManager: params.MetricsManager,
		pick:           rand.IntN,
		now:            time.Now,
	}
}

// WithPicker replaces the random asset selection, used by tests.
func (r *OutfitRewarder) WithPicker(pick func(n int) int) *OutfitRewarder {
	r.pick = pick
	return r
}

func (r *OutfitRewarder) RewardClaimed(ctx context.Context, uid string, day plans.DayPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.avatar.rewardClaimed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(r.outfitAssets) == 0 {
		log.Debugf("no outfit assets configured, skip unlock for user %s", uid)
		return nil
	}

	defer func() {
		r.countUnlock(err)
	}()

	vendorUserID, err := r.avatars.VendorUserID(ctx, uid)
	if err != nil {
		return err
	}
	if vendorUserID == "" {
		return ErrNoVendorUser
	}

	assetID := r.outfitAssets[r.pick(len(r.outfitAssets))]
	span.SetAttributes(attribute.String("asset.id", assetID))

	if err := r.unlock(ctx, assetID, vendorUserID); err != nil {
		return err
	}

	date := ""
	if !day.Date.IsZero() {
		date = day.Date.Format(time.DateOnly)
	}
	if err := r.store.Set(ctx, docstore.Ref{
		Collection: docstore.UserCollection(uid, OutfitsCollection),
		ID:         assetID,
	}, map[string]any{
		"date":       date,
		"unlockedAt": r.now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		return fmt.Errorf("record unlocked outfit: %w", err)
	}

	log.Debugf("outfit %s unlocked for user %s", assetID, uid)
	return nil
}

func (r *OutfitRewarder) unlock(ctx context.Context, assetID, vendorUserID string) error {
	body, err := json.Marshal(unlockRequest{Data: unlockData{UserID: vendorUserID}})
	if err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s/v1/assets/%s/unlock", r.apiBaseURL, url.PathEscape(assetID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new unlock request: %w", err)
	}
	req.Header.Set("x-api-key", r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("unlock request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: asset %s, status %d", ErrUnlockFailed, assetID, resp.StatusCode)
	}
	return nil
}

func (r *OutfitRewarder) countUnlock(err error) {
	if r.metricsManager == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.metricsManager.CounterOutfitUnlocks.WithLabelValues(result).Inc()
}

func sortOutfits(outfits []UnlockedOutfit) {
	sort.SliceStable(outfits, func(i, j int) bool {
		if !outfits[i].UnlockedAt.Equal(outfits[j].UnlockedAt) {
			return outfits[i].UnlockedAt.After(outfits[j].UnlockedAt)
		}
		return outfits[i].AssetID < outfits[j].AssetID
	})
}
