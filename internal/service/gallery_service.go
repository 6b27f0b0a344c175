package service

import "autoworld/internal/domain"

// GalleryService answers the car gallery's detail popups and filter bar.
type GalleryService interface {
	Details(carType string) (*domain.CarCard, error)
	Filter(category string) *domain.GalleryView
}

type galleryServiceImpl struct {
	gallery domain.Gallery
}

func NewGalleryService(g domain.Gallery) GalleryService {
	return &galleryServiceImpl{gallery: g}
}

func (s *galleryServiceImpl) Details(carType string) (*domain.CarCard, error) {
	card, err := s.gallery.Details(carType)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *galleryServiceImpl) Filter(category string) *domain.GalleryView {
	if category == "" {
		category = domain.FilterAll
	}
	view := s.gallery.Filter(category)
	return &view
}
