package services

import (
	"context"
	"strings"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"gorm.io/gorm"
)

type DiscoverService struct {
	db *gorm.DB
}

func NewDiscoverService(db *gorm.DB) *DiscoverService {
	return &DiscoverService{db: db}
}

type DiscoverInput struct {
	Title       string   `json:"title" binding:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	DistanceKM  float64  `json:"distance_km" binding:"gte=0"`
	Images      []string `json:"images"`
}

type DiscoverPatch struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	DistanceKM  *float64  `json:"distance_km" binding:"omitempty,gte=0"`
	Images      *[]string `json:"images"`
}

func (s *DiscoverService) Create(ctx context.Context, in DiscoverInput) (*models.Discover, error) {
	d := &models.Discover{
		Title:       strings.TrimSpace(in.Title),
		Category:    strings.ToLower(strings.TrimSpace(in.Category)),
		Description: in.Description,
		Location:    in.Location,
		DistanceKM:  in.DistanceKM,
		Images:      in.Images,
	}
	if d.Title == "" {
		return nil, invalid("title is required")
	}
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DiscoverService) List(ctx context.Context, category string) ([]models.Discover, error) {
	q := s.db.WithContext(ctx).Order("distance_km ASC, id ASC")
	if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
		q = q.Where("category = ?", category)
	}
	var places []models.Discover
	if err := q.Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (s *DiscoverService) Get(ctx context.Context, id uint) (*models.Discover, error) {
	var d models.Discover
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, translate(err, "place")
	}
	return &d, nil
}

func (s *DiscoverService) Update(ctx context.Context, id uint, p DiscoverPatch) (*models.Discover, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := map[string]interface{}{}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return nil, invalid("title is required")
		}
		changes["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Category != nil {
		changes["category"] = strings.ToLower(strings.TrimSpace(*p.Category))
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Location != nil {
		changes["location"] = *p.Location
	}
	if p.DistanceKM != nil {
		changes["distance_km"] = *p.DistanceKM
	}
	if p.Images != nil {
		d.Images = *p.Images
		changes["images"] = d.Images
	}
	if len(changes) == 0 {
		return d, nil
	}
	if err := s.db.WithContext(ctx).Model(d).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *DiscoverService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Discover{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return newError(ErrNotFound, "place not found")
	}
	return nil
}
