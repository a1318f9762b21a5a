package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// ListModel mirrors the lists schema. Names are unique per guild,
// case-insensitively.
type ListModel struct {
	gorm.Model
	GuildID   string `gorm:"not null;index:idx_guild_name,unique"`
	Name      string `gorm:"not null"`
	NameLower string `gorm:"not null;index:idx_guild_name,unique"`
	Items     []ListItemModel `gorm:"foreignKey:ListID"`
}

func (ListModel) TableName() string {
	return "lists"
}

// ListItemModel mirrors the list_items schema. Each item caches the provider
// metadata needed to play it without a fresh lookup.
type ListItemModel struct {
	gorm.Model
	ListID     uint `gorm:"not null;index"`
	Position   int  `gorm:"not null"`
	Source     string
	TrackID    string
	Title      string
	Creator    string
	URI        string
	PreviewURL string
	DurationMS int64
}

func (ListItemModel) TableName() string {
	return "list_items"
}

// ListRepository persists guild-scoped lists in SQLite.
type ListRepository struct {
	db *gorm.DB
}

// NewListRepository creates a repository backed by SQLite at the given path.
func NewListRepository(path string) (*ListRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: database path is not set", domain.ErrConfiguration)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&ListModel{}, &ListItemModel{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &ListRepository{db: db}, nil
}

var _ ports.LocalListStore = (*ListRepository)(nil)

// Lookup returns the guild's list with the given name, matched
// case-insensitively, or nil when no such list exists. Items come back in
// their stored order.
func (r *ListRepository) Lookup(
	ctx context.Context,
	guildID snowflake.ID,
	name string,
) (*domain.LocalList, error) {
	var model ListModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("guild_id = ? AND name_lower = ?", guildID.String(), lowerName(name)).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list lookup failed: %w", err)
	}

	return toLocalList(&model), nil
}

// Create persists a new list with the given items.
func (r *ListRepository) Create(
	ctx context.Context,
	guildID snowflake.ID,
	name string,
	items []domain.LocalItem,
) (*domain.LocalList, error) {
	model := ListModel{
		GuildID:   guildID.String(),
		Name:      name,
		NameLower: lowerName(name),
		Items:     make([]ListItemModel, len(items)),
	}
	for i, item := range items {
		model.Items[i] = ListItemModel{
			Position:   i,
			Source:     string(item.Source),
			TrackID:    item.ID,
			Title:      item.Title,
			Creator:    item.Creator,
			URI:        item.URI,
			PreviewURL: item.PreviewURL,
			DurationMS: item.Duration.Milliseconds(),
		}
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("list create failed: %w", err)
	}

	return toLocalList(&model), nil
}

// Delete removes a guild's list and its items.
func (r *ListRepository) Delete(ctx context.Context, guildID snowflake.ID, name string) error {
	var model ListModel
	err := r.db.WithContext(ctx).
		Where("guild_id = ? AND name_lower = ?", guildID.String(), lowerName(name)).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: no local list found for %q", domain.ErrInvalidArgument, name)
	}
	if err != nil {
		return fmt.Errorf("list lookup failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Where("list_id = ?", model.ID).Delete(&ListItemModel{}).Error; err != nil {
		return fmt.Errorf("list items delete failed: %w", err)
	}
	if err := r.db.WithContext(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("list delete failed: %w", err)
	}
	return nil
}

// Names returns the guild's list names in creation order.
func (r *ListRepository) Names(ctx context.Context, guildID snowflake.ID) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&ListModel{}).
		Where("guild_id = ?", guildID.String()).
		Order("id ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list names failed: %w", err)
	}
	return names, nil
}

func lowerName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func toLocalList(model *ListModel) *domain.LocalList {
	items := make([]domain.LocalItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.LocalItem{
			Source:     domain.Source(item.Source),
			ID:         item.TrackID,
			Title:      item.Title,
			Creator:    item.Creator,
			URI:        item.URI,
			PreviewURL: item.PreviewURL,
			Duration:   time.Duration(item.DurationMS) * time.Millisecond,
		}
	}

	return &domain.LocalList{
		ID:    model.ID,
		Name:  model.Name,
		Items: items,
	}
}
