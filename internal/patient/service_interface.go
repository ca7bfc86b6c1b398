package patient

import (
	"context"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/pagination"
)

// ServiceInterface defines the contract for patient business logic operations
type ServiceInterface interface {
	CreatePatient(ctx context.Context, req CreatePatientRequest) (*Patient, error)
	GetPatient(ctx context.Context, id string) (*Patient, error)
	ListPatients(ctx context.Context) []Patient
	ListPatientsWithPagination(ctx context.Context, params pagination.Params, search string) *PaginatedPatientListResponse
	DeletePatient(ctx context.Context, id string) error
	DeletePatientAt(ctx context.Context, index int) (*Patient, error)
	ConditionHistogram(ctx context.Context) chart.Histogram
}

// MetricsRecorder receives OpenTelemetry counters for patient operations.
type MetricsRecorder interface {
	RecordPatientOperation(ctx context.Context, operation string)
	RecordValidationFailure(ctx context.Context, field string)
}

// ConditionObserver mirrors the store's condition counts into scrapeable gauges.
type ConditionObserver interface {
	ObserveConditions(h chart.Histogram)
	CountMutation(operation string)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
