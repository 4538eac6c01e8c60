package service_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/reportvault/pkg/internal/model"
	"github.com/yeisme/reportvault/pkg/internal/service"
	"github.com/yeisme/reportvault/pkg/internal/types"
)

// seedReportType 建一个带字段定义的报告类型.
func seedReportType(t *testing.T, env *testEnv, name string, fields ...string) *types.ReportTypeResponse {
	t.Helper()

	svc := service.NewReportTypeService(env.ctx)

	rt, err := svc.CreateType(env.ctx, &types.CreateReportTypeRequest{Name: name})
	if err != nil {
		t.Fatalf("create type: %v", err)
	}

	for _, f := range fields {
		if _, err := svc.AddField(env.ctx, rt.ID, &types.CreateReportFieldRequest{
			Name:  f,
			Label: f,
		}); err != nil {
			t.Fatalf("add field %s: %v", f, err)
		}
	}

	return rt
}

func TestCreateReportValueMapping(t *testing.T) {
	env := newTestEnv(t)
	rt := seedReportType(t, env, "巡检", "temperature", "note", "passed", "comment")
	svc := service.NewReportService(env.ctx)

	resp, err := svc.CreateReport(env.ctx, &types.CreateReportRequest{
		ReportTypeID: rt.ID,
		Title:        "三号线巡检",
		Values:       `{"temperature": 42, "note": "ok", "passed": true, "comment": null, "ghost": "dropped"}`,
	}, nil)
	if err != nil {
		t.Fatalf("create report: %v", err)
	}

	if len(resp.Values) != 4 {
		t.Fatalf("values = %v, want 4 entries", resp.Values)
	}

	for key, want := range map[string]string{
		"temperature": "42",
		"note":        "ok",
		"passed":      "true",
	} {
		got, ok := resp.Values[key]
		if !ok || got == nil || *got != want {
			t.Errorf("values[%q] = %v, want %q", key, got, want)
		}
	}

	// null 保留为 NULL
	if got, ok := resp.Values["comment"]; !ok || got != nil {
		t.Errorf("values[comment] = %v, want present nil", got)
	}

	// 未知键静默丢弃
	if _, ok := resp.Values["ghost"]; ok {
		t.Errorf("unknown key persisted: %v", resp.Values)
	}
}

func TestCreateReportBadValuesWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	rt := seedReportType(t, env, "巡检", "note")
	svc := service.NewReportService(env.ctx)

	_, err := svc.CreateReport(env.ctx, &types.CreateReportRequest{
		ReportTypeID: rt.ID,
		Title:        "坏值",
		Values:       `["not", "an", "object"]`,
	}, nil)
	if !errors.Is(err, service.ErrBadValues) {
		t.Fatalf("create err = %v, want ErrBadValues", err)
	}

	var count int64
	if err := env.db.Model(&model.Report{}).Count(&count).Error; err != nil {
		t.Fatalf("count reports: %v", err)
	}

	if count != 0 {
		t.Fatalf("reports = %d, want 0", count)
	}
}

func TestCreateReportAttachments(t *testing.T) {
	env := newTestEnv(t)
	rt := seedReportType(t, env, "巡检")
	svc := service.NewReportService(env.ctx)

	files := makeFileHeaders(t, []filePart{
		{name: "photo.png", content: "png-bytes"},
		{name: "log.txt", content: "log-bytes"},
	})

	resp, err := svc.CreateReport(env.ctx, &types.CreateReportRequest{
		ReportTypeID: rt.ID,
		Title:        "带附件",
	}, files)
	if err != nil {
		t.Fatalf("create report: %v", err)
	}

	if len(resp.Attachments) != 2 {
		t.Fatalf("attachments = %d, want 2", len(resp.Attachments))
	}

	if resp.Attachments[0].Filename != "photo.png" || resp.Attachments[1].Filename != "log.txt" {
		t.Errorf("attachment order = %q, %q", resp.Attachments[0].Filename, resp.Attachments[1].Filename)
	}

	for i, want := range []string{"png-bytes", "log-bytes"} {
		att := resp.Attachments[i]

		wantDir := filepath.Join(env.attachRoot, "reports")
		if filepath.Dir(filepath.Dir(att.StoragePath)) != wantDir {
			t.Errorf("storage path = %q, want under %q", att.StoragePath, wantDir)
		}

		data, err := os.ReadFile(att.StoragePath)
		if err != nil {
			t.Fatalf("read attachment: %v", err)
		}

		if string(data) != want {
			t.Errorf("attachment content = %q, want %q", data, want)
		}
	}
}

func TestGetReportNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewReportService(env.ctx)

	_, err := svc.GetReport(env.ctx, 999)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("get err = %v, want ErrNotFound", err)
	}
}

func TestListReports(t *testing.T) {
	env := newTestEnv(t)
	rt := seedReportType(t, env, "巡检", "note")
	svc := service.NewReportService(env.ctx)

	for _, title := range []string{"第一份", "第二份"} {
		if _, err := svc.CreateReport(env.ctx, &types.CreateReportRequest{
			ReportTypeID: rt.ID,
			Title:        title,
			Values:       `{"note": "ok"}`,
		}, nil); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	list, err := svc.ListReports(env.ctx)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("reports = %d, want 2", len(list))
	}

	if list[0].Title != "第一份" || list[1].Title != "第二份" {
		t.Errorf("order = %q, %q", list[0].Title, list[1].Title)
	}
}
