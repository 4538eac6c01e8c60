// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yeisme/reportvault/pkg/configs"
	ctxPkg "github.com/yeisme/reportvault/pkg/context"
	"github.com/yeisme/reportvault/pkg/internal/model"
	"github.com/yeisme/reportvault/pkg/internal/storage"
	"github.com/yeisme/reportvault/pkg/log"
	"github.com/yeisme/reportvault/pkg/scheduler"
)

// orphanGraceWindow 大对象行成为清理候选前的保留时长。
// 附件内容在聚合事务提交前就已落库，窗口避免删掉进行中提交的行。
const orphanGraceWindow = 24 * time.Hour

// RegisterCronJobs 配置业务定时任务：
//   - 每天 03:20 清理孤儿大对象行（附件内容已提交但所属报告事务回滚的残留）
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于任务使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	// 孤儿清理只对数据库大对象后端有意义
	if configs.GetConfig().Storage.Attachments.Backend == configs.AttachmentBackendDB {
		_ = sched.AddCron(JobReportFileOrphanSweep, CronReportFileOrphanSweep, func(ctx context.Context) {
			runReportFileOrphanSweep(ctx, mgr)
		}, baseCtx)
	}

	return nil
}

// runReportFileOrphanSweep 删除没有任何附件元数据引用、且已过保留窗口的大对象行。
func runReportFileOrphanSweep(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobReportFileOrphanSweep).Logger()

	if mgr == nil || mgr.GetDBClient() == nil || mgr.GetDBClient().GetDB() == nil {
		l.Error().Msg("db not initialized")
		return
	}

	dbx := mgr.GetDBClient().GetDB().WithContext(ctx)

	cutoff := time.Now().Add(-orphanGraceWindow)
	referenced := dbx.Model(&model.ReportAttachment{}).Select("storage_path")

	res := dbx.
		Where("created_at < ?", cutoff).
		Where("path_locator NOT IN (?)", referenced).
		Delete(&model.ReportFile{})
	if res.Error != nil {
		l.Error().Err(res.Error).Msg("orphan sweep failed")
		return
	}

	if res.RowsAffected > 0 {
		l.Info().Int64("removed", res.RowsAffected).Time("before", cutoff).Msg("orphan report files removed")
	}
}
