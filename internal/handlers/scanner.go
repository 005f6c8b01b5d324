package handlers

import (
	"time"

	"noteshub/internal/content"
	"noteshub/internal/metrics"
	"noteshub/internal/models"
)

// scanner wraps the content mapper with scan instrumentation. Both
// handler groups resolve the corpus through it, so every filesystem
// walk shows up in /metrics no matter which surface triggered it.
type scanner struct {
	mapper  *content.Mapper
	metrics *metrics.Metrics
}

func (s *scanner) posts(locale models.Locale) ([]models.Post, error) {
	start := time.Now()
	posts, err := s.mapper.Posts(locale)
	s.observe(start, err)
	if err == nil {
		s.metrics.PostsIndexed.WithLabelValues(locale.String()).Set(float64(len(posts)))
	}
	return posts, err
}

func (s *scanner) postBySlug(locale models.Locale, slug string) (*models.Post, error) {
	start := time.Now()
	post, err := s.mapper.PostBySlug(locale, slug)
	s.observe(start, err)
	return post, err
}

func (s *scanner) categories(locale models.Locale) ([]models.CategoryCount, error) {
	start := time.Now()
	counts, err := s.mapper.CategoriesWithCounts(locale)
	s.observe(start, err)
	return counts, err
}

func (s *scanner) postsInCategory(locale models.Locale, categorySlug string) ([]models.Post, *models.CategoryCount, error) {
	start := time.Now()
	posts, def, err := s.mapper.PostsInCategory(locale, categorySlug)
	s.observe(start, err)
	return posts, def, err
}

func (s *scanner) translations(slug string) ([]models.Translation, error) {
	start := time.Now()
	translations, err := s.mapper.AvailableTranslations(slug)
	s.observe(start, err)
	return translations, err
}

func (s *scanner) observe(start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	s.metrics.ContentScansTotal.WithLabelValues(result).Inc()
	s.metrics.ContentScanDurationSeconds.Observe(time.Since(start).Seconds())
}
