package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// MediaRepository defines the interface for media storage
type MediaRepository interface {
	FindByID(ctx context.Context, id string) (*model.Media, error)
	FindByKey(ctx context.Context, key string) (*model.Media, error)
	FindAll(ctx context.Context) ([]*model.Media, error)
	Insert(ctx context.Context, media *model.Media) error
	RemoveByID(ctx context.Context, id string) error
}

// MediaService tracks uploaded asset references and countersigns direct
// uploads to the external media store. The asset bytes never pass through
// this service.
type MediaService struct {
	mediaRepo MediaRepository
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	now       func() time.Time
}

// NewMediaService creates a new media service.
func NewMediaService(mediaRepo MediaRepository, cloudName, apiKey, apiSecret, folder string) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
		now:       time.Now,
	}
}

// Sign countersigns an upload ticket so the client can push the asset
// straight to the media store. The secret never leaves the server; only the
// derived signature does.
func (s *MediaService) Sign(ctx context.Context, session *model.Session, req model.MediaSignRequest) (*model.MediaSignature, error) {
	if session == nil {
		return nil, forbidden("authentication required")
	}

	timestamp := fmt.Sprintf("%d", s.now().Unix())
	payload := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s", s.folder, req.PublicID, timestamp)
	sum := sha256.Sum256([]byte(payload + s.apiSecret))

	return &model.MediaSignature{
		Signature: hex.EncodeToString(sum[:]),
		Timestamp: timestamp,
		Folder:    s.folder,
		CloudName: s.cloudName,
		APIKey:    s.apiKey,
	}, nil
}

// Get lists every recorded asset reference.
func (s *MediaService) Get(ctx context.Context, session *model.Session) ([]model.MediaExport, error) {
	if !session.CanAdminister() {
		return nil, forbidden("administrator role required")
	}

	assets, err := s.mediaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.MediaExport, 0, len(assets))
	for _, m := range assets {
		out = append(out, m.Export())
	}
	return out, nil
}

// Create records an uploaded asset under its unique key.
func (s *MediaService) Create(ctx context.Context, session *model.Session, req model.MediaCreateRequest) (*model.MediaExport, error) {
	if !session.CanContribute() {
		return nil, forbidden("contributor role required")
	}

	existing, err := s.mediaRepo.FindByKey(ctx, req.PublicID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMediaKeyExists
	}

	media := &model.Media{Key: req.PublicID, URL: req.URL}
	if err := s.mediaRepo.Insert(ctx, media); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrMediaKeyExists
		}
		return nil, err
	}
	export := media.Export()
	return &export, nil
}

// Remove deletes an asset reference.
func (s *MediaService) Remove(ctx context.Context, session *model.Session, req model.MediaRemoveRequest) error {
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}

	media, err := s.mediaRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if media == nil {
		return ErrMediaNotFound
	}
	return s.mediaRepo.RemoveByID(ctx, media.ID)
}
