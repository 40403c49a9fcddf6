package directoryservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/pkg/rediscache"
)

// Origin источник справочных данных
type Origin interface {
	GetPsychologist(ctx context.Context, psychologistID int64) (*Psychologist, error)
	GetClinic(ctx context.Context, clinicID int64) (*Clinic, error)
	GetPatient(ctx context.Context, patientID int64) (*Patient, error)
	GetSlots(ctx context.Context, psychologistID int64, date time.Time) ([]Slot, error)
}

// Cache JSON-кэш
type Cache interface {
	Get(ctx context.Context, key string, dst interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
}

// CachedClient кэширует психологов, клиники и пациентов.
// Слоты не кэшируются. Ошибки кэша не прерывают запрос, данные берутся из источника.
type CachedClient struct {
	origin Origin
	cache  Cache
	log    Logger
}

// NewCachedClient создает клиента с кэшем поверх источника
func NewCachedClient(origin Origin, cache Cache, log Logger) *CachedClient {
	return &CachedClient{origin: origin, cache: cache, log: log}
}

// GetPsychologist получает психолога через кэш
func (c *CachedClient) GetPsychologist(ctx context.Context, psychologistID int64) (*Psychologist, error) {
	return readThrough(ctx, c, fmt.Sprintf("psychologist:%d", psychologistID), func() (*Psychologist, error) {
		return c.origin.GetPsychologist(ctx, psychologistID)
	})
}

// GetClinic получает клинику через кэш
func (c *CachedClient) GetClinic(ctx context.Context, clinicID int64) (*Clinic, error) {
	return readThrough(ctx, c, fmt.Sprintf("clinic:%d", clinicID), func() (*Clinic, error) {
		return c.origin.GetClinic(ctx, clinicID)
	})
}

// GetPatient получает пациента через кэш
func (c *CachedClient) GetPatient(ctx context.Context, patientID int64) (*Patient, error) {
	return readThrough(ctx, c, fmt.Sprintf("patient:%d", patientID), func() (*Patient, error) {
		return c.origin.GetPatient(ctx, patientID)
	})
}

// GetSlots всегда обращается к источнику
func (c *CachedClient) GetSlots(ctx context.Context, psychologistID int64, date time.Time) ([]Slot, error) {
	return c.origin.GetSlots(ctx, psychologistID, date)
}

func readThrough[T any](ctx context.Context, c *CachedClient, key string, load func() (*T, error)) (*T, error) {
	var cached T
	err := c.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, rediscache.ErrCacheMiss) {
		c.log.Warn("DirectoryCache: get %s failed: %v", key, err)
	}

	value, err := load()
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, value); err != nil {
		c.log.Warn("DirectoryCache: set %s failed: %v", key, err)
	}

	return value, nil
}
