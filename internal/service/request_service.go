package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"gatepass/internal/cache"
	"gatepass/internal/errors"
	"gatepass/internal/metrics"
	"gatepass/internal/model"
	"gatepass/internal/store"
)

const (
	requestIDPrefix = "REQ"
	statsCacheKey   = "gatepass:stats"
)

// RequestService implements the gate pass lifecycle over the storage gateway.
// Every mutation is a load -> modify -> save cycle over the whole dataset.
type RequestService interface {
	Create(ctx context.Context, studentID, studentName, reason, returnTime string) (*model.GatePassRequest, error)
	ListAll(ctx context.Context) ([]model.GatePassRequest, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.GatePassRequest, error)
	Review(ctx context.Context, requestID string, status model.RequestStatus, moderatorID, moderatorName, remarks string) (*model.GatePassRequest, error)
	Verify(ctx context.Context, studentID string) (*model.GatePassRequest, error)
	MarkUsed(ctx context.Context, requestID string) error
	Stats(ctx context.Context) (*model.Stats, error)
}

type requestService struct {
	store store.Store
	cache *cache.Client
	ttl   time.Duration
	// mu serializes load->mutate->save cycles; the storage gateway has no
	// transactions of its own.
	mu sync.Mutex
}

// NewRequestService creates a new request service. The cache client may be
// nil, in which case stats are recomputed on every call.
func NewRequestService(st store.Store, cacheClient *cache.Client, statsTTL time.Duration) RequestService {
	return &requestService{store: st, cache: cacheClient, ttl: statsTTL}
}

// Create validates the request content, generates a unique id and appends a
// pending request to the dataset.
func (s *requestService) Create(ctx context.Context, studentID, studentName, reason, returnTime string) (*model.GatePassRequest, error) {
	if studentID == "" || studentName == "" || reason == "" || returnTime == "" {
		return nil, errors.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ds := s.store.Load(ctx)
	now := time.Now()

	req := model.GatePassRequest{
		ID:          nextRequestID(ds, now),
		StudentID:   studentID,
		StudentName: studentName,
		Reason:      reason,
		ReturnTime:  returnTime,
		Status:      model.StatusPending,
		Timestamp:   now,
	}
	ds.Requests = append(ds.Requests, req)

	if err := s.store.Save(ctx, ds); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSaveFailed, err)
	}

	metrics.RequestsCreated.Inc()
	_ = s.cache.Delete(ctx, statsCacheKey)
	return &req, nil
}

// ListAll returns every request, most recent first.
func (s *requestService) ListAll(ctx context.Context) ([]model.GatePassRequest, error) {
	ds := s.store.Load(ctx)
	return sortedDesc(ds.Requests), nil
}

// ListByStudent returns the requests of one student, most recent first.
func (s *requestService) ListByStudent(ctx context.Context, studentID string) ([]model.GatePassRequest, error) {
	ds := s.store.Load(ctx)
	filtered := make([]model.GatePassRequest, 0)
	for _, r := range ds.Requests {
		if r.StudentID == studentID {
			filtered = append(filtered, r)
		}
	}
	return sortedDesc(filtered), nil
}

// Review applies the one-shot status transition Pending -> Approved|Rejected
// and records the moderator fields atomically with it.
func (s *requestService) Review(ctx context.Context, requestID string, status model.RequestStatus, moderatorID, moderatorName, remarks string) (*model.GatePassRequest, error) {
	if !status.IsReviewOutcome() {
		return nil, errors.ErrInvalidStatus
	}
	if moderatorID == "" || moderatorName == "" {
		return nil, errors.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ds := s.store.Load(ctx)
	req := ds.FindRequest(requestID)
	if req == nil {
		return nil, errors.ErrRequestNotFound
	}
	if req.Status != model.StatusPending {
		return nil, errors.ErrAlreadyReviewed
	}

	now := time.Now()
	req.Status = status
	req.ModeratorID = &moderatorID
	req.ModeratorName = &moderatorName
	req.ModeratorRemarks = &remarks
	req.ReviewedAt = &now

	if err := s.store.Save(ctx, ds); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSaveFailed, err)
	}

	metrics.RequestsReviewed.WithLabelValues(string(status)).Inc()
	_ = s.cache.Delete(ctx, statsCacheKey)
	updated := *req
	return &updated, nil
}

// Verify returns the single most recent approved and unused request for a
// student, or nil when the student holds no active pass. A missing pass is a
// valid negative result, not an error.
func (s *requestService) Verify(ctx context.Context, studentID string) (*model.GatePassRequest, error) {
	ds := s.store.Load(ctx)
	candidates := make([]model.GatePassRequest, 0)
	for _, r := range ds.Requests {
		if r.StudentID == studentID && r.Status == model.StatusApproved && !r.Used {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sorted := sortedDesc(candidates)
	return &sorted[0], nil
}

// MarkUsed consumes a pass: the one-shot used transition false -> true.
func (s *requestService) MarkUsed(ctx context.Context, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds := s.store.Load(ctx)
	req := ds.FindRequest(requestID)
	if req == nil {
		return errors.ErrRequestNotFound
	}
	if req.Used {
		return errors.ErrPassAlreadyUsed
	}

	now := time.Now()
	req.Used = true
	req.UsedAt = &now

	if err := s.store.Save(ctx, ds); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrSaveFailed, err)
	}

	metrics.PassesUsed.Inc()
	_ = s.cache.Delete(ctx, statsCacheKey)
	return nil
}

// Stats aggregates counts over the full request collection. Results are
// cached briefly; every mutation invalidates the cache key.
func (s *requestService) Stats(ctx context.Context) (*model.Stats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached model.Stats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	ds := s.store.Load(ctx)
	stats := computeStats(ds.Requests, time.Now())

	if data, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, data, s.ttl)
	}
	return stats, nil
}

func computeStats(requests []model.GatePassRequest, now time.Time) *model.Stats {
	stats := &model.Stats{Total: len(requests)}
	ny, nm, nd := now.In(time.Local).Date()
	for _, r := range requests {
		switch r.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusApproved:
			stats.Approved++
		case model.StatusRejected:
			stats.Rejected++
		}
		if r.Used {
			stats.Used++
		}
		ry, rm, rd := r.Timestamp.In(time.Local).Date()
		if ry == ny && rm == nm && rd == nd {
			stats.Today++
		}
	}
	return stats
}

// nextRequestID derives an id from the creation instant and bumps the suffix
// until it is unique across the dataset, so two creates in the same
// millisecond cannot collide.
func nextRequestID(ds *model.Dataset, now time.Time) string {
	millis := now.UnixMilli()
	for {
		id := requestIDPrefix + strconv.FormatInt(millis, 10)
		if ds.FindRequest(id) == nil {
			return id
		}
		millis++
	}
}

// sortedDesc returns a copy sorted most recent first.
func sortedDesc(requests []model.GatePassRequest) []model.GatePassRequest {
	out := make([]model.GatePassRequest, len(requests))
	copy(out, requests)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
