package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dshowevents/contratia/internal/history/domain"
)

// Service keeps the submission history, newest first, capped at a
// configured maximum. Adding beyond the cap evicts the oldest entries.
type Service struct {
	db   *gorm.DB
	node *snowflake.Node
	log  *zap.Logger
	max  int
}

func NewService(db *gorm.DB, node *snowflake.Node, log *zap.Logger, max int) *Service {
	return &Service{db: db, node: node, log: log, max: max}
}

type AddInput struct {
	ContractNumber string
	Kind           string
	ClientName     string
	EventDate      string
	Links          any
}

func (s *Service) Add(ctx context.Context, in AddInput) (*domain.Entry, error) {
	links, err := json.Marshal(in.Links)
	if err != nil {
		return nil, err
	}
	entry := domain.Entry{
		ID:             s.node.Generate(),
		ContractNumber: in.ContractNumber,
		Kind:           in.Kind,
		ClientName:     in.ClientName,
		EventDate:      in.EventDate,
		Links:          links,
		CreatedAt:      time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return s.evict(tx)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// evict removes the oldest rows beyond the cap.
func (s *Service) evict(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&domain.Entry{}).Count(&count).Error; err != nil {
		return err
	}
	excess := count - int64(s.max)
	if excess <= 0 {
		return nil
	}
	var victims []snowflake.ID
	err := tx.Model(&domain.Entry{}).
		Order("created_at ASC, id ASC").
		Limit(int(excess)).
		Pluck("id", &victims).Error
	if err != nil {
		return err
	}
	s.log.Debug("history cap reached, evicting oldest",
		zap.Int("evicted", len(victims)))
	return tx.Delete(&domain.Entry{}, victims).Error
}

func (s *Service) List(ctx context.Context) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

func (s *Service) Remove(ctx context.Context, id snowflake.ID) error {
	return s.db.WithContext(ctx).Delete(&domain.Entry{}, id).Error
}

func (s *Service) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&domain.Entry{}).Error
}
