package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/reportvault/pkg/internal/model"
	"github.com/yeisme/reportvault/pkg/internal/service"
	"github.com/yeisme/reportvault/pkg/internal/types"
)

func fullReportRequest() *types.SubmitFullReportRequest {
	return &types.SubmitFullReportRequest{
		OperationCode:   45,
		RpNumber:        "RP-2024-001",
		Creator:         "张工",
		ProductName:     "控制器",
		ProductCode:     "PC-7",
		CreatorTime:     "2024-06-01",
		VerificationMan: "李工",
		ProLeader:       "王工",
		RecipeLeader:    "赵工",
	}
}

func TestSubmitFullReportWithFile(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewProductReportService(env.ctx)

	file := makeFileHeaders(t, []filePart{{name: "report.pdf", content: "pdf-bytes"}})[0]

	resp := svc.SubmitFullReport(env.ctx, fullReportRequest(), file)
	if resp.OperationCode != 45 || resp.State != types.FullReportStateSuccess {
		t.Fatalf("resp = %+v, want {45 success}", resp)
	}

	var row model.ProductFullReport
	if err := env.db.First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}

	wantPath := filepath.Join(env.productRoot, "PC-7", "report.pdf")
	if row.FileName == nil || *row.FileName != wantPath {
		t.Fatalf("file name = %v, want %q", row.FileName, wantPath)
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}

	if string(data) != "pdf-bytes" {
		t.Errorf("file content = %q", data)
	}

	if got := row.CreatorTime.Format("2006-01-02"); got != "2024-06-01" {
		t.Errorf("creator time = %q, want 2024-06-01", got)
	}
}

func TestSubmitFullReportWithoutFile(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewProductReportService(env.ctx)

	resp := svc.SubmitFullReport(env.ctx, fullReportRequest(), nil)
	if resp.State != types.FullReportStateSuccess {
		t.Fatalf("state = %q, want success", resp.State)
	}

	var row model.ProductFullReport
	if err := env.db.First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}

	if row.FileName != nil {
		t.Errorf("file name = %q, want nil", *row.FileName)
	}
}

func TestSubmitFullReportStoresFormOperationCode(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewProductReportService(env.ctx)

	req := fullReportRequest()
	req.OperationCode = 46

	resp := svc.SubmitFullReport(env.ctx, req, nil)
	if resp.OperationCode != 45 {
		t.Errorf("resp operation code = %d, want constant 45", resp.OperationCode)
	}

	var row model.ProductFullReport
	if err := env.db.First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}

	if row.OperationCode != 46 {
		t.Errorf("stored operation code = %d, want 46", row.OperationCode)
	}

	// 表单缺省补 45
	req2 := fullReportRequest()
	req2.RpNumber = "RP-2024-002"
	req2.OperationCode = 0

	svc.SubmitFullReport(env.ctx, req2, nil)

	var row2 model.ProductFullReport
	if err := env.db.Where("rp_number = ?", "RP-2024-002").First(&row2).Error; err != nil {
		t.Fatalf("load second row: %v", err)
	}

	if row2.OperationCode != 45 {
		t.Errorf("defaulted operation code = %d, want 45", row2.OperationCode)
	}
}

func TestSubmitFullReportBadCreatorTimeLeavesFile(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewProductReportService(env.ctx)

	req := fullReportRequest()
	req.CreatorTime = "01/06/2024"

	file := makeFileHeaders(t, []filePart{{name: "report.pdf", content: "pdf-bytes"}})[0]

	resp := svc.SubmitFullReport(env.ctx, req, file)
	if resp.OperationCode != 45 || resp.State != types.FullReportStateFail {
		t.Fatalf("resp = %+v, want {45 fail}", resp)
	}

	var count int64
	if err := env.db.Model(&model.ProductFullReport{}).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}

	if count != 0 {
		t.Fatalf("rows = %d, want 0", count)
	}

	// 文件先落盘，记录失败时不回收
	if _, err := os.Stat(filepath.Join(env.productRoot, "PC-7", "report.pdf")); err != nil {
		t.Errorf("report file missing: %v", err)
	}
}
