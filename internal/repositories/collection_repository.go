package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"staff-attendance/internal/models"
	"staff-attendance/internal/storage"
)

// Storage keys for the three collections.
const (
	KeyEmployees     = "employees"
	KeyTimeRecords   = "timeRecords"
	KeyLeaveRequests = "leaveRequests"
)

// CollectionRepositoryInterface defines whole-collection persistence for
// the three entity collections. Loading never fails: an absent key or a
// malformed stored value reads back as an empty collection.
type CollectionRepositoryInterface interface {
	LoadEmployees() []models.Employee
	SaveEmployees(employees []models.Employee) error
	LoadTimeRecords() []models.TimeRecord
	SaveTimeRecords(records []models.TimeRecord) error
	LoadLeaveRequests() []models.LeaveRequest
	SaveLeaveRequests(requests []models.LeaveRequest) error
}

// CollectionRepository implements CollectionRepositoryInterface over a
// KeyValue store. Every save serializes and overwrites the full
// collection; the three keys are written independently.
type CollectionRepository struct {
	kv storage.KeyValue
}

// NewCollectionRepository creates a new CollectionRepository.
func NewCollectionRepository(kv storage.KeyValue) *CollectionRepository {
	return &CollectionRepository{kv: kv}
}

// load fills dst from the stored value for key. Missing or malformed data
// is treated as "no data", never surfaced to the caller.
func (r *CollectionRepository) load(key string, dst any) {
	data, err := r.kv.Load(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("loading %q: %v", key, err)
		}
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("stored %q is malformed, treating as empty: %v", key, err)
	}
}

func (r *CollectionRepository) save(key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("serializing %q: %w", key, err)
	}
	if err := r.kv.Save(key, data); err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}

func (r *CollectionRepository) LoadEmployees() []models.Employee {
	var out []models.Employee
	r.load(KeyEmployees, &out)
	if out == nil {
		out = []models.Employee{}
	}
	return out
}

func (r *CollectionRepository) SaveEmployees(employees []models.Employee) error {
	return r.save(KeyEmployees, employees)
}

func (r *CollectionRepository) LoadTimeRecords() []models.TimeRecord {
	var out []models.TimeRecord
	r.load(KeyTimeRecords, &out)
	if out == nil {
		out = []models.TimeRecord{}
	}
	return out
}

func (r *CollectionRepository) SaveTimeRecords(records []models.TimeRecord) error {
	return r.save(KeyTimeRecords, records)
}

func (r *CollectionRepository) LoadLeaveRequests() []models.LeaveRequest {
	var out []models.LeaveRequest
	r.load(KeyLeaveRequests, &out)
	if out == nil {
		out = []models.LeaveRequest{}
	}
	return out
}

func (r *CollectionRepository) SaveLeaveRequests(requests []models.LeaveRequest) error {
	return r.save(KeyLeaveRequests, requests)
}
