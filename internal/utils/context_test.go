// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRunIDRoundTrip(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-1")

	runID, ok := GetRunIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if runID != "run-1" {
		t.Errorf("expected runID=run-1, got %s", runID)
	}
}

func TestGetRunIDFromContext_Missing(t *testing.T) {
	runID, ok := GetRunIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if runID != "" {
		t.Errorf("expected empty runID, got %s", runID)
	}
}

func TestGetRunIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RunIDCtxKey, 42)

	if _, ok := GetRunIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestGetSubjectFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "workflow-7")

	subject, ok := GetSubjectFromContext(ctx)

	if !ok || subject != "workflow-7" {
		t.Fatalf("expected workflow-7, got %q (ok=%v)", subject, ok)
	}
}

func TestGetSubjectFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "")

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty subject")
	}
}
