package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emmanuel-nwafor/Fore-made-webApp/kvstore"
	"github.com/emmanuel-nwafor/Fore-made-webApp/metrics"
	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// Service reads and writes the extras blob and exposes the aggregated view.
type Service struct {
	store kvstore.Store
	log   zerolog.Logger
}

func NewService(store kvstore.Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log.With().Str("component", "profile").Logger()}
}

// View aggregates the profile for a signed-in session.
func (s *Service) View(ctx context.Context, session *models.Session) (models.ProfileView, error) {
	if session == nil {
		return models.ProfileView{}, models.ErrAuthRequired
	}
	raw, _, err := s.store.Get(ctx, kvstore.UserDataKey(session.UID))
	if err != nil {
		return models.ProfileView{}, fmt.Errorf("load profile extras: %w", err)
	}
	return Aggregate(session, []byte(raw), s.OrderCount(ctx, session.UID))
}

// InitExtras writes the initial extras blob after registration. An existing
// blob is left alone.
func (s *Service) InitExtras(ctx context.Context, uid string, extras models.ProfileExtras) error {
	key := kvstore.UserDataKey(uid)
	if _, exists, err := s.store.Get(ctx, key); err != nil {
		return fmt.Errorf("check profile extras: %w", err)
	} else if exists {
		return nil
	}
	if extras.CreatedAt == "" {
		extras.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.saveExtras(ctx, uid, extras)
}

// UpdateInput carries a partial extras update; nil fields are untouched.
type UpdateInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
}

// Update applies a partial update to the stored extras and returns the new
// view.
func (s *Service) Update(ctx context.Context, session *models.Session, in UpdateInput) (models.ProfileView, error) {
	if session == nil {
		return models.ProfileView{}, models.ErrAuthRequired
	}
	extras, err := s.loadExtras(ctx, session.UID)
	if err != nil {
		return models.ProfileView{}, err
	}

	if in.Name != nil {
		extras.Name = *in.Name
	}
	if in.Address != nil {
		extras.Address = *in.Address
	}
	if in.Country != nil {
		extras.Country = *in.Country
	}
	if in.Phone != nil {
		extras.Phone = *in.Phone
	}

	if err := s.saveExtras(ctx, session.UID, extras); err != nil {
		return models.ProfileView{}, err
	}
	return s.View(ctx, session)
}

// SaveAvatar validates the image and stores it inline in the extras blob,
// replacing any previous avatar.
func (s *Service) SaveAvatar(ctx context.Context, session *models.Session, data []byte) (models.ProfileView, error) {
	if session == nil {
		return models.ProfileView{}, models.ErrAuthRequired
	}
	contentType, err := ValidateAvatar(data)
	if err != nil {
		metrics.AvatarRejected.Inc()
		return models.ProfileView{}, err
	}

	extras, err := s.loadExtras(ctx, session.UID)
	if err != nil {
		return models.ProfileView{}, err
	}
	extras.ProfileImage = EncodeAvatar(contentType, data)
	if err := s.saveExtras(ctx, session.UID, extras); err != nil {
		return models.ProfileView{}, err
	}
	return s.View(ctx, session)
}

// OrderCount reads the length of the user's order history. The history is
// written at order placement, which lives outside this service; a missing or
// malformed blob counts as zero.
func (s *Service) OrderCount(ctx context.Context, uid string) int {
	raw, ok, err := s.store.Get(ctx, kvstore.OrderHistoryKey(uid))
	if err != nil || !ok || raw == "" {
		return 0
	}
	var orders []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.log.Warn().Err(err).Str("user_id", uid).Msg("order history blob malformed")
		return 0
	}
	return len(orders)
}

func (s *Service) loadExtras(ctx context.Context, uid string) (models.ProfileExtras, error) {
	raw, _, err := s.store.Get(ctx, kvstore.UserDataKey(uid))
	if err != nil {
		return models.ProfileExtras{}, fmt.Errorf("load profile extras: %w", err)
	}
	extras, ok := DecodeExtras([]byte(raw))
	if !ok && raw != "" {
		s.log.Warn().Str("user_id", uid).Msg("profile extras malformed, using defaults")
	}
	return extras, nil
}

func (s *Service) saveExtras(ctx context.Context, uid string, extras models.ProfileExtras) error {
	raw, err := json.Marshal(extras)
	if err != nil {
		return fmt.Errorf("encode profile extras: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.UserDataKey(uid), string(raw)); err != nil {
		return fmt.Errorf("persist profile extras: %w", err)
	}
	return nil
}
