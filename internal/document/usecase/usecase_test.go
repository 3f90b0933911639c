package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"life-balance-planner/internal/document"
	"life-balance-planner/internal/document/repository/memory"
	"life-balance-planner/internal/document/usecase"
	"life-balance-planner/internal/model"
	"life-balance-planner/pkg/agent"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockPublisher struct {
	mu   sync.Mutex
	sent []model.AdvisoryMessage
}

func (m *mockPublisher) Publish(ctx context.Context, msg model.AdvisoryMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
}

func (m *mockPublisher) PublishAfter(ctx context.Context, delay time.Duration, msg model.AdvisoryMessage) {
	m.Publish(ctx, msg)
}

func (m *mockPublisher) messages() []model.AdvisoryMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.AdvisoryMessage(nil), m.sent...)
}

type mockAgent struct {
	mu      sync.Mutex
	result  *agent.Result
	err     error
	gate    chan struct{}
	lastReq agent.RunRequest
}

func (m *mockAgent) Run(ctx context.Context, req agent.RunRequest) (*agent.Result, error) {
	m.mu.Lock()
	m.lastReq = req
	gate := m.gate
	m.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.result, m.err
}

var pdf = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

func float(v float64) *float64 { return &v }

func newUseCase(ag agent.IAgent) (document.UseCase, *mockPublisher) {
	pub := &mockPublisher{}
	uc := usecase.New(&mockLogger{}, memory.New(), ag, pub, usecase.Config{StudentName: "Alex", Timeout: time.Second})
	return uc, pub
}

func upload(t *testing.T, uc document.UseCase, name string) model.UploadedDocument {
	t.Helper()
	doc, err := uc.Upload(context.Background(), document.UploadInput{Name: name, Content: pdf})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	return doc
}

func wait(t *testing.T, uc document.UseCase, id string) model.UploadedDocument {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	doc, err := uc.Wait(ctx, id)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	return doc
}

func TestUploadValidation(t *testing.T) {
	uc, _ := newUseCase(&mockAgent{})
	ctx := context.Background()

	tests := []struct {
		name  string
		input document.UploadInput
		want  error
	}{
		{"missing name", document.UploadInput{Content: pdf}, document.ErrEmptyName},
		{"empty content", document.UploadInput{Name: "a.pdf"}, document.ErrEmptyContent},
		{"not a pdf", document.UploadInput{Name: "a.pdf", Content: []byte("hello world")}, document.ErrNotPDF},
		{"bad confidence", document.UploadInput{Name: "a.pdf", Content: pdf, Metadata: document.Metadata{ConfidenceLevel: "very"}}, document.ErrInvalidConfidence},
		{"negative coefficient", document.UploadInput{Name: "a.pdf", Content: pdf, Metadata: document.Metadata{ModuleCoefficient: -1}}, document.ErrInvalidCoefficient},
		{"bad deadline", document.UploadInput{Name: "a.pdf", Content: pdf, Metadata: document.Metadata{TaskDeadline: "tomorrow"}}, document.ErrInvalidDeadline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Upload(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	docs, _ := uc.List(ctx)
	if len(docs) != 0 {
		t.Errorf("rejected uploads must not be stored, got %d", len(docs))
	}
}

func TestUploadTooLarge(t *testing.T) {
	pub := &mockPublisher{}
	uc := usecase.New(&mockLogger{}, memory.New(), &mockAgent{}, pub, usecase.Config{MaxSize: 8})
	_, err := uc.Upload(context.Background(), document.UploadInput{Name: "a.pdf", Content: pdf})
	if !errors.Is(err, document.ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestUploadProcessed(t *testing.T) {
	extracted, _ := json.Marshal(model.PlanningData{Exams: []model.ExamInfo{{Name: "Final", Date: "2024-12-22"}}})
	ag := &mockAgent{
		gate: make(chan struct{}),
		result: &agent.Result{
			UrgencyScore:  float(0.82),
			ExtractedData: extracted,
			Raw:           json.RawMessage(`{"urgencyScore":0.82}`),
		},
	}
	uc, pub := newUseCase(ag)

	var mu sync.Mutex
	var seen []*document.Analysis
	uc.Subscribe(func(ctx context.Context, doc model.UploadedDocument, a *document.Analysis) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, a)
	})

	doc, err := uc.Upload(context.Background(), document.UploadInput{
		Name:     "syllabus.pdf",
		Content:  pdf,
		Metadata: document.Metadata{NewTaskDescription: "Essay", TaskDeadline: "2024-12-20"},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if doc.Status != model.DocumentProcessing {
		t.Fatalf("upload must return a processing document, got %s", doc.Status)
	}
	if _, err := uc.MostRecent(context.Background()); !errors.Is(err, document.ErrNoProcessedDoc) {
		t.Errorf("in-flight documents must be ignored, got %v", err)
	}

	close(ag.gate)
	done := wait(t, uc, doc.ID)

	if done.Status != model.DocumentProcessed || done.ProcessedAt == nil {
		t.Fatalf("unexpected document: %+v", done)
	}
	if done.ExtractedData == nil || len(done.ExtractedData.Exams) != 1 {
		t.Errorf("extracted data = %+v", done.ExtractedData)
	}
	if string(done.AgentResponse) != `{"urgencyScore":0.82}` {
		t.Errorf("agent response = %s", done.AgentResponse)
	}

	ag.mu.Lock()
	req := ag.lastReq
	ag.mu.Unlock()
	if req.Metadata.StudentName != "Alex" || req.Metadata.ConfidenceLevel != "medium" || req.Metadata.ModuleCoefficient != 1 {
		t.Errorf("metadata defaults not applied: %+v", req.Metadata)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 1 || seen[0] == nil {
		t.Fatalf("listener calls = %v", seen)
	}
	a := seen[0]
	if a.Priority != model.RecommendationHigh {
		t.Errorf("priority from urgency = %s", a.Priority)
	}
	if a.Confidence != usecase.DefaultConfidence || a.Recommendation != usecase.DefaultRecommendation {
		t.Errorf("defaults not applied: %+v", a)
	}
	if len(pub.messages()) != 0 {
		t.Errorf("no advisory expected on success, got %+v", pub.messages())
	}

	pd, err := uc.LatestPlanningData(context.Background())
	if err != nil || pd == nil || pd.Exams[0].Name != "Final" {
		t.Errorf("latest planning data = %+v, %v", pd, err)
	}
}

func TestUploadExplicitPriority(t *testing.T) {
	ag := &mockAgent{result: &agent.Result{Recommendation: "Go", Priority: "low", UrgencyScore: float(0.95), Confidence: float(0.6)}}
	uc, _ := newUseCase(ag)

	var got *document.Analysis
	uc.Subscribe(func(ctx context.Context, doc model.UploadedDocument, a *document.Analysis) { got = a })
	doc := upload(t, uc, "a.pdf")
	wait(t, uc, doc.ID)

	if got == nil || got.Priority != model.RecommendationLow || got.Confidence != 0.6 || got.Recommendation != "Go" {
		t.Errorf("analysis = %+v", got)
	}
}

func TestUploadFailure(t *testing.T) {
	ag := &mockAgent{err: &agent.StatusError{Code: 500, Body: "boom"}}
	uc, pub := newUseCase(ag)

	var calls int
	var analysis *document.Analysis
	uc.Subscribe(func(ctx context.Context, doc model.UploadedDocument, a *document.Analysis) {
		calls++
		analysis = a
	})

	doc := upload(t, uc, "broken.pdf")
	done := wait(t, uc, doc.ID)

	if done.Status != model.DocumentError || done.ErrorMessage != "API returned 500: boom" {
		t.Errorf("unexpected document: %+v", done)
	}
	if calls != 1 || analysis != nil {
		t.Errorf("listener should see a nil analysis once, calls=%d", calls)
	}
	msgs := pub.messages()
	if len(msgs) != 1 || msgs[0].Kind != model.AdvisoryDocumentFailed || !strings.Contains(msgs[0].Text, "broken.pdf") {
		t.Errorf("advisories = %+v", msgs)
	}
	if _, err := uc.MostRecent(context.Background()); !errors.Is(err, document.ErrNoProcessedDoc) {
		t.Errorf("failed documents must be ignored, got %v", err)
	}
	if pd, err := uc.LatestPlanningData(context.Background()); pd != nil || err != nil {
		t.Errorf("expected no planning data, got %+v %v", pd, err)
	}
}

func TestUploadMalformedPlanningData(t *testing.T) {
	ag := &mockAgent{result: &agent.Result{Recommendation: "x", ExtractedData: json.RawMessage(`{"exams":"soon"}`)}}
	uc, _ := newUseCase(ag)

	doc := upload(t, uc, "a.pdf")
	done := wait(t, uc, doc.ID)
	if done.Status != model.DocumentError || !strings.Contains(done.ErrorMessage, "malformed planning data") {
		t.Errorf("unexpected document: %+v", done)
	}
}

func TestUploadTimeout(t *testing.T) {
	ag := &mockAgent{gate: make(chan struct{})}
	pub := &mockPublisher{}
	uc := usecase.New(&mockLogger{}, memory.New(), ag, pub, usecase.Config{Timeout: 20 * time.Millisecond})

	doc := upload(t, uc, "slow.pdf")
	done := wait(t, uc, doc.ID)
	if done.Status != model.DocumentError || !strings.Contains(done.ErrorMessage, context.DeadlineExceeded.Error()) {
		t.Errorf("unexpected document: %+v", done)
	}
	close(ag.gate)
}

func TestDeleteWhileProcessing(t *testing.T) {
	ag := &mockAgent{gate: make(chan struct{}), result: &agent.Result{Recommendation: "x"}}
	uc, _ := newUseCase(ag)

	var calls int
	uc.Subscribe(func(ctx context.Context, doc model.UploadedDocument, a *document.Analysis) { calls++ })

	doc := upload(t, uc, "a.pdf")
	if err := uc.Delete(context.Background(), doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	close(ag.gate)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := uc.Wait(ctx, doc.ID); !errors.Is(err, document.ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
	if calls != 0 {
		t.Errorf("completion for a deleted document must be dropped")
	}
	if err := uc.Delete(context.Background(), doc.ID); !errors.Is(err, document.ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestListAndMostRecent(t *testing.T) {
	ag := &mockAgent{result: &agent.Result{Recommendation: "x"}}
	uc, _ := newUseCase(ag)

	first := upload(t, uc, "first.pdf")
	wait(t, uc, first.ID)
	second := upload(t, uc, "second.pdf")
	wait(t, uc, second.ID)

	docs, _ := uc.List(context.Background())
	if len(docs) != 2 || docs[0].ID != second.ID {
		t.Errorf("expected newest first, got %+v", docs)
	}

	recent, err := uc.MostRecent(context.Background())
	if err != nil || recent.ID != second.ID {
		t.Errorf("most recent = %+v, %v", recent, err)
	}

	if err := uc.Shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestUploadTopLevelPlanningLists(t *testing.T) {
	res, err := agent.Normalize([]byte(`{"recommendation":"Plan ahead",
		"classes":[{"name":"CS101","time":"09:00","days":["Mon"]}],
		"exams":[{"name":"Final","date":"2024-12-22"}],
		"assignments":[{"name":"Essay","deadline":"2024-12-20"}]}`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	uc, _ := newUseCase(&mockAgent{result: res})

	doc := upload(t, uc, "timetable.pdf")
	done := wait(t, uc, doc.ID)
	if done.Status != model.DocumentProcessed {
		t.Fatalf("status = %s (%s)", done.Status, done.ErrorMessage)
	}
	pd := done.ExtractedData
	if pd == nil || len(pd.Classes) != 1 || len(pd.Exams) != 1 || len(pd.Assignments) != 1 {
		t.Fatalf("extracted data = %+v", pd)
	}
	if pd.Classes[0].Name != "CS101" || pd.Exams[0].Date != "2024-12-22" || pd.Assignments[0].Deadline != "2024-12-20" {
		t.Errorf("unexpected planning data: %+v", pd)
	}
}

type perFileAgent struct {
	gates map[string]chan struct{}
}

func (m *perFileAgent) Run(ctx context.Context, req agent.RunRequest) (*agent.Result, error) {
	select {
	case <-m.gates[req.FileName]:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &agent.Result{Recommendation: req.FileName}, nil
}

func TestMostRecentFollowsCompletionOrder(t *testing.T) {
	ag := &perFileAgent{gates: map[string]chan struct{}{
		"early.pdf": make(chan struct{}),
		"late.pdf":  make(chan struct{}),
	}}
	uc, _ := newUseCase(ag)

	early := upload(t, uc, "early.pdf")
	late := upload(t, uc, "late.pdf")

	close(ag.gates["late.pdf"])
	wait(t, uc, late.ID)
	time.Sleep(time.Millisecond)
	close(ag.gates["early.pdf"])
	wait(t, uc, early.ID)

	recent, err := uc.MostRecent(context.Background())
	if err != nil {
		t.Fatalf("most recent: %v", err)
	}
	if recent.ID != early.ID {
		t.Errorf("most recent = %s, want the document that finished last (%s)", recent.Name, early.Name)
	}
}
