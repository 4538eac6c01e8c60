package service_test

import (
	"errors"
	"testing"

	"github.com/yeisme/reportvault/pkg/internal/service"
	"github.com/yeisme/reportvault/pkg/internal/types"
)

func TestCreateTypeDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewReportTypeService(env.ctx)

	req := &types.CreateReportTypeRequest{Name: "质检报告"}

	if _, err := svc.CreateType(env.ctx, req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.CreateType(env.ctx, req)
	if !errors.Is(err, service.ErrDuplicateName) {
		t.Fatalf("second create err = %v, want ErrDuplicateName", err)
	}
}

func TestAddFieldDefaultsFieldType(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewReportTypeService(env.ctx)

	rt, err := svc.CreateType(env.ctx, &types.CreateReportTypeRequest{Name: "温度巡检"})
	if err != nil {
		t.Fatalf("create type: %v", err)
	}

	field, err := svc.AddField(env.ctx, rt.ID, &types.CreateReportFieldRequest{
		Name:     "note",
		Label:    "备注",
		Required: true,
	})
	if err != nil {
		t.Fatalf("add field: %v", err)
	}

	if field.FieldType != "text" {
		t.Errorf("field type = %q, want %q", field.FieldType, "text")
	}

	if !field.Required {
		t.Errorf("required = false, want true")
	}
}

func TestAddFieldMissingType(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewReportTypeService(env.ctx)

	_, err := svc.AddField(env.ctx, 999, &types.CreateReportFieldRequest{
		Name:  "note",
		Label: "备注",
	})
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("add field err = %v, want ErrNotFound", err)
	}
}

func TestListFieldsMissingTypeReturnsEmpty(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewReportTypeService(env.ctx)

	fields, err := svc.ListFields(env.ctx, 999)
	if err != nil {
		t.Fatalf("list fields: %v", err)
	}

	if len(fields) != 0 {
		t.Fatalf("fields = %v, want empty", fields)
	}
}

func TestListTypesIncludesFields(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewReportTypeService(env.ctx)

	rt, err := svc.CreateType(env.ctx, &types.CreateReportTypeRequest{Name: "出厂检验"})
	if err != nil {
		t.Fatalf("create type: %v", err)
	}

	for _, name := range []string{"temperature", "humidity"} {
		if _, err := svc.AddField(env.ctx, rt.ID, &types.CreateReportFieldRequest{
			Name:  name,
			Label: name,
		}); err != nil {
			t.Fatalf("add field %s: %v", name, err)
		}
	}

	list, err := svc.ListTypes(env.ctx)
	if err != nil {
		t.Fatalf("list types: %v", err)
	}

	if len(list) != 1 {
		t.Fatalf("types = %d, want 1", len(list))
	}

	got := list[0]
	if got.Name != "出厂检验" || len(got.Fields) != 2 {
		t.Fatalf("type = %+v, want 2 fields", got)
	}

	if got.Fields[0].Name != "temperature" || got.Fields[1].Name != "humidity" {
		t.Errorf("field order = %q, %q", got.Fields[0].Name, got.Fields[1].Name)
	}
}
