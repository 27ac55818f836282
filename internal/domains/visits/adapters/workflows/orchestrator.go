package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	visitsapp "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application"
	visittypes "github.com/Apurer/go-gin-petclinic/internal/domains/visits/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
	visitworkflows "github.com/Apurer/go-gin-petclinic/internal/durable/temporal/workflows/visits"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalVisitWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineVisitWorkflows)(nil)
)

// workflowStarter is the subset of client.Client used to start visit workflows.
type workflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
	GetWorkflow(ctx context.Context, workflowID string, runID string) client.WorkflowRun
}

// TemporalVisitWorkflows starts visit workflows on a Temporal cluster.
type TemporalVisitWorkflows struct {
	client    workflowStarter
	taskQueue string
}

func NewTemporalVisitWorkflows(c client.Client) *TemporalVisitWorkflows {
	return &TemporalVisitWorkflows{client: c, taskQueue: visitworkflows.VisitCreationTaskQueue}
}

// CreateVisit validates the request locally, then runs the creation workflow
// and waits for its result. Invalid requests never start a workflow. Every
// booking gets its own workflow unless the caller supplied an idempotency
// key, in which case a replay joins the run that key already started.
func (o *TemporalVisitWorkflows) CreateVisit(ctx context.Context, req visittypes.VisitRequest) (*domain.Visit, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal visit workflows not configured")
	}
	if err := visitsapp.CheckVisit(req); err != nil {
		return nil, err
	}
	traceComponent := workflowTraceComponent(ctx)
	key := strings.TrimSpace(req.IdempotencyKey)
	workflowID := buildVisitCreationWorkflowID(req.PetID, key, traceComponent)
	options := client.StartWorkflowOptions{
		ID:                                       workflowID,
		TaskQueue:                                o.taskQueue,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
	if key != "" {
		options.WorkflowIDReusePolicy = enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		visitworkflows.VisitCreationWorkflowName,
		visitworkflows.VisitCreationWorkflowInput{Request: req, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if key == "" || !errors.As(err, &alreadyStarted) {
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
	}
	var visit domain.Visit
	if err := run.Get(ctx, &visit); err != nil {
		return nil, err
	}
	return &visit, nil
}

// InlineVisitWorkflows calls the service directly, for local runs without Temporal.
type InlineVisitWorkflows struct {
	service ports.Service
}

func NewInlineVisitWorkflows(service ports.Service) *InlineVisitWorkflows {
	return &InlineVisitWorkflows{service: service}
}

func (o *InlineVisitWorkflows) CreateVisit(ctx context.Context, req visittypes.VisitRequest) (*domain.Visit, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline visit workflows not configured")
	}
	return o.service.CreateVisit(ctx, req)
}

func buildVisitCreationWorkflowID(petID int64, idempotencyKey, traceComponent string) string {
	if idempotencyKey != "" {
		sum := sha256.Sum256([]byte(idempotencyKey))
		return fmt.Sprintf("visit-creation-%d-idem-%s", petID, hex.EncodeToString(sum[:8]))
	}
	return fmt.Sprintf("visit-creation-%d-%s-%s", petID, traceComponent, uuid.NewString())
}

func workflowTraceComponent(ctx context.Context) string {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if spanCtx.IsValid() {
		return spanCtx.TraceID().String()
	}
	return "untraced"
}
