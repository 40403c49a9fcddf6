package directoryservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со справочным сервисом (психологи, клиники, пациенты, слоты)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPsychologist получает психолога по ID
func (c *Client) GetPsychologist(ctx context.Context, psychologistID int64) (*Psychologist, error) {
	var psychologist Psychologist
	path := fmt.Sprintf("/internal/psychologists/%d", psychologistID)
	if err := c.get(ctx, path, ErrPsychologistNotFound, &psychologist); err != nil {
		return nil, err
	}
	return &psychologist, nil
}

// GetClinic получает клинику по ID
func (c *Client) GetClinic(ctx context.Context, clinicID int64) (*Clinic, error) {
	var clinic Clinic
	path := fmt.Sprintf("/internal/clinics/%d", clinicID)
	if err := c.get(ctx, path, ErrClinicNotFound, &clinic); err != nil {
		return nil, err
	}
	return &clinic, nil
}

// GetPatient получает пациента по ID
func (c *Client) GetPatient(ctx context.Context, patientID int64) (*Patient, error) {
	var patient Patient
	path := fmt.Sprintf("/internal/patients/%d", patientID)
	if err := c.get(ctx, path, ErrPatientNotFound, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetSlots получает настроенные слоты психолога на дату
func (c *Client) GetSlots(ctx context.Context, psychologistID int64, date time.Time) ([]Slot, error) {
	var resp SlotsResponse
	path := fmt.Sprintf("/internal/psychologists/%d/slots?date=%s",
		psychologistID, url.QueryEscape(date.Format(domain.DateFormat)))
	if err := c.get(ctx, path, ErrPsychologistNotFound, &resp); err != nil {
		return nil, err
	}
	if resp.Slots == nil {
		return []Slot{}, nil
	}
	return resp.Slots, nil
}

func (c *Client) get(ctx context.Context, path string, notFound error, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request %s: %v", ErrInternal, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s: unexpected status code %d: %s", ErrInvalidResponse, path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, path, err)
	}

	return nil
}
