// Package http exposes the assignment core over a REST API.
// It coordinates between HTTP handlers and application use cases, translating
// domain errors into status codes at the boundary.
package http

import (
	"errors"
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewJobRequest is the payload for booking a job.
type NewJobRequest struct {
	VehicleType    string `json:"vehicleType,omitempty"`
	PickupRegion   string `json:"pickupRegion"`
	DeliveryRegion string `json:"deliveryRegion"`
	AgreedAmount   int64  `json:"agreedAmount"`
	Currency       string `json:"currency"`
}

// DocumentRequest is one compliance document in a carrier registration.
type DocumentRequest struct {
	Type       string    `json:"type"`
	IssueDate  time.Time `json:"issueDate"`
	ExpiryDate time.Time `json:"expiryDate"`
}

// NewCarrierRequest is the payload for registering a carrier.
type NewCarrierRequest struct {
	Name              string            `json:"name"`
	RegionsOfInterest []string          `json:"regionsOfInterest,omitempty"`
	FleetTypes        []string          `json:"fleetTypes,omitempty"`
	ServicesOffered   []string          `json:"servicesOffered,omitempty"`
	HasWarehousing    bool              `json:"hasWarehousing,omitempty"`
	Documents         []DocumentRequest `json:"documents,omitempty"`
}

// AllocateRequest selects a carrier for a job. A missing carrierId asks the
// system to pick the best eligible match automatically.
type AllocateRequest struct {
	CarrierID *string `json:"carrierId,omitempty"`
}

// StatusChangeRequest moves a job to a target lifecycle status.
type StatusChangeRequest struct {
	Status           string `json:"status"`
	PaymentConfirmed bool   `json:"paymentConfirmed,omitempty"`
}

// JobResponse is one job in the active-jobs listing.
type JobResponse struct {
	ID                      string  `json:"id"`
	VehicleType             string  `json:"vehicleType,omitempty"`
	PickupRegion            string  `json:"pickupRegion"`
	DeliveryRegion          string  `json:"deliveryRegion"`
	AgreedAmount            int64   `json:"agreedAmount"`
	AgreedCurrency          string  `json:"agreedCurrency"`
	Status                  string  `json:"status"`
	ProofOfDeliveryUploaded bool    `json:"proofOfDeliveryUploaded"`
	AssignedCarrierID       *string `json:"assignedCarrierId,omitempty"`
	Version                 int64   `json:"version"`
}

// CarrierResponse is one carrier in the directory listing.
type CarrierResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	RegionsOfInterest []string `json:"regionsOfInterest"`
	FleetTypes        []string `json:"fleetTypes"`
	ServicesOffered   []string `json:"servicesOffered"`
	HasWarehousing    bool     `json:"hasWarehousing"`
}

// MatchResponse is one ranked carrier for a job.
type MatchResponse struct {
	CarrierID        string   `json:"carrierId"`
	CarrierName      string   `json:"carrierName"`
	Score            int      `json:"score"`
	Reasons          []string `json:"reasons"`
	ComplianceStatus string   `json:"complianceStatus"`
}

// IDResponse carries the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// Server handles the REST API for job booking, carrier registration,
// matching, allocation, and lifecycle management.
type Server struct {
	// Command handlers
	createJobHandler       commands.CreateJobCommandHandler
	createCarrierHandler   commands.CreateCarrierCommandHandler
	allocateCarrierHandler commands.AllocateCarrierCommandHandler
	changeJobStatusHandler commands.ChangeJobStatusCommandHandler
	recordPODHandler       commands.RecordProofOfDeliveryCommandHandler

	// Query handlers
	getActiveJobsHandler queries.GetActiveJobsQueryHandler
	getCarriersHandler   queries.GetCarriersQueryHandler
	matchCarriersHandler queries.MatchCarriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	createCarrierHandler commands.CreateCarrierCommandHandler,
	allocateCarrierHandler commands.AllocateCarrierCommandHandler,
	changeJobStatusHandler commands.ChangeJobStatusCommandHandler,
	recordPODHandler commands.RecordProofOfDeliveryCommandHandler,
	getActiveJobsHandler queries.GetActiveJobsQueryHandler,
	getCarriersHandler queries.GetCarriersQueryHandler,
	matchCarriersHandler queries.MatchCarriersQueryHandler,
) *Server {
	return &Server{
		createJobHandler:       createJobHandler,
		createCarrierHandler:   createCarrierHandler,
		allocateCarrierHandler: allocateCarrierHandler,
		changeJobStatusHandler: changeJobStatusHandler,
		recordPODHandler:       recordPODHandler,
		getActiveJobsHandler:   getActiveJobsHandler,
		getCarriersHandler:     getCarriersHandler,
		matchCarriersHandler:   matchCarriersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/jobs", s.CreateJob)
	api.GET("/jobs/active", s.GetActiveJobs)
	api.GET("/jobs/:id/matches", s.MatchCarriers)
	api.POST("/jobs/:id/allocate", s.AllocateCarrier)
	api.POST("/jobs/:id/status", s.ChangeJobStatus)
	api.POST("/jobs/:id/pod", s.RecordProofOfDelivery)

	api.POST("/carriers", s.CreateCarrier)
	api.GET("/carriers", s.GetCarriers)

	e.GET("/health", s.Health)
}

// CreateJob handles POST /api/v1/jobs - books a new job.
func (s *Server) CreateJob(ctx echo.Context) error {
	var request NewJobRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(jobID, request.VehicleType,
		request.PickupRegion, request.DeliveryRegion, request.AgreedAmount, request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid job data: "+err.Error())
	}

	if handleErr := s.createJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: jobID.String()})
}

// CreateCarrier handles POST /api/v1/carriers - registers a carrier.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var request NewCarrierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	documents := make([]commands.ComplianceDocumentSpec, 0, len(request.Documents))
	for _, doc := range request.Documents {
		documents = append(documents, commands.ComplianceDocumentSpec{
			Type:       doc.Type,
			IssueDate:  doc.IssueDate,
			ExpiryDate: doc.ExpiryDate,
		})
	}

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(carrierID, request.Name,
		request.RegionsOfInterest, request.FleetTypes, request.ServicesOffered,
		request.HasWarehousing, documents)
	if err != nil {
		return badRequest(ctx, "Invalid carrier data: "+err.Error())
	}

	if handleErr := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: carrierID.String()})
}

// GetActiveJobs handles GET /api/v1/jobs/active - retrieves all non-archived jobs.
func (s *Server) GetActiveJobs(ctx echo.Context) error {
	query := queries.NewGetActiveJobsQuery()

	jobs, err := s.getActiveJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve jobs")
	}

	response := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		response[i] = JobResponse{
			ID:                      j.ID.String(),
			VehicleType:             j.VehicleType,
			PickupRegion:            j.PickupRegion,
			DeliveryRegion:          j.DeliveryRegion,
			AgreedAmount:            j.AgreedAmount,
			AgreedCurrency:          j.AgreedCurrency,
			Status:                  j.Status,
			ProofOfDeliveryUploaded: j.ProofOfDeliveryUploaded,
			Version:                 j.Version,
		}
		if j.AssignedCarrierID != nil {
			carrierID := j.AssignedCarrierID.String()
			response[i].AssignedCarrierID = &carrierID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCarriers handles GET /api/v1/carriers - retrieves the carrier directory.
// Supports optional region, fleetType, and search query parameters.
func (s *Server) GetCarriers(ctx echo.Context) error {
	query := queries.NewGetCarriersQuery(
		ctx.QueryParam("region"),
		ctx.QueryParam("fleetType"),
		ctx.QueryParam("search"),
	)

	carriers, err := s.getCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve carriers")
	}

	response := make([]CarrierResponse, len(carriers))
	for i, c := range carriers {
		response[i] = CarrierResponse{
			ID:                c.ID.String(),
			Name:              c.Name,
			RegionsOfInterest: c.RegionsOfInterest,
			FleetTypes:        c.FleetTypes,
			ServicesOffered:   c.ServicesOffered,
			HasWarehousing:    c.HasWarehousing,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MatchCarriers handles GET /api/v1/jobs/:id/matches - ranks carriers for a job.
func (s *Server) MatchCarriers(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid job identifier")
	}

	query, err := queries.NewMatchCarriersQuery(jobID)
	if err != nil {
		return badRequest(ctx, "Invalid job identifier")
	}

	matches, err := s.matchCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]MatchResponse, len(matches))
	for i, m := range matches {
		response[i] = MatchResponse{
			CarrierID:        m.CarrierID.String(),
			CarrierName:      m.CarrierName,
			Score:            m.Score,
			Reasons:          m.Reasons,
			ComplianceStatus: m.ComplianceStatus,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AllocateCarrier handles POST /api/v1/jobs/:id/allocate - allocates a carrier
// to a job, explicitly or by automatic selection.
func (s *Server) AllocateCarrier(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid job identifier")
	}

	var request AllocateRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var carrierID *kernel.UUID
	if request.CarrierID != nil {
		id, idErr := kernel.UUIDFromString(*request.CarrierID)
		if idErr != nil {
			return badRequest(ctx, "Invalid carrier identifier")
		}
		carrierID = &id
	}

	cmd, err := commands.NewAllocateCarrierCommand(jobID, carrierID)
	if err != nil {
		return badRequest(ctx, "Invalid allocation data: "+err.Error())
	}

	if handleErr := s.allocateCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeJobStatus handles POST /api/v1/jobs/:id/status - moves a job to a
// target lifecycle status.
func (s *Server) ChangeJobStatus(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid job identifier")
	}

	var request StatusChangeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := job.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+request.Status)
	}

	cmd, err := commands.NewChangeJobStatusCommand(jobID, target, request.PaymentConfirmed)
	if err != nil {
		return badRequest(ctx, "Invalid status change data: "+err.Error())
	}

	if handleErr := s.changeJobStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordProofOfDelivery handles POST /api/v1/jobs/:id/pod - records that a
// delivery-proof document was stored for the job.
func (s *Server) RecordProofOfDelivery(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid job identifier")
	}

	cmd, err := commands.NewRecordProofOfDeliveryCommand(jobID)
	if err != nil {
		return badRequest(ctx, "Invalid job identifier")
	}

	if handleErr := s.recordPODHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// domainError maps a use-case error to an HTTP status code.
//
// Not found and stale-write conflicts keep their conventional codes; rejected
// lifecycle transitions and allocation rules come back as 422 because the
// request was well-formed but the system's state or rules refuse it.
func domainError(ctx echo.Context, err error) error {
	var (
		unknownTransitionErr *job.UnknownTransitionError
		preconditionErr      *job.PreconditionNotMetError
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, errs.ErrConcurrencyConflict):
		return respond(ctx, http.StatusConflict, err.Error())

	case errors.As(err, &unknownTransitionErr),
		errors.As(err, &preconditionErr),
		errors.Is(err, services.ErrNonCompliantCarrier),
		errors.Is(err, services.ErrCarrierNotRanked),
		errors.Is(err, commands.ErrNoCarriersFound),
		errors.Is(err, commands.ErrNoEligibleCarrierFound):
		return respond(ctx, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return respond(ctx, http.StatusBadRequest, err.Error())

	default:
		return respond(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func internalError(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusInternalServerError, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
