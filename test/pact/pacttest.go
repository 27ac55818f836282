//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "petclinic-api"
	ConsumerName = "clinic-frontend"

	StateOwnersBaseline = "no owners registered"
	StateOwnerExists    = "owner with id 1 exists"
	StateVetsSeeded     = "default vets seeded"
	StatePetHasVisits   = "pet with id 7 has visits"
)

const (
	ExistingOwnerID int64 = 1
	MissingOwnerID  int64 = 404
	VisitedPetID    int64 = 7
	UnvisitedPetID  int64 = 8

	ExampleVisitDate        = "2013-01-01"
	ExampleVisitDescription = "rabies shot"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the pact file written by the clinic frontend consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOwnerPayload is the owner both sides of the contract agree on.
func ExampleOwnerPayload() map[string]string {
	return map[string]string{
		"firstName": "George",
		"lastName":  "Franklin",
		"address":   "110 W. Liberty St.",
		"city":      "Madison",
		"telephone": "6085551023",
	}
}

func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
