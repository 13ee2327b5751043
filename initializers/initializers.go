package initializers

import (
	"context"
	"job-portal-backend/config"
	"job-portal-backend/fiberlog"
	applicationhandler "job-portal-backend/lib/application"
	authhandler "job-portal-backend/lib/auth"
	xlsexport "job-portal-backend/lib/export/xls"
	jobhandler "job-portal-backend/lib/job"
	jobexpiryworker "job-portal-backend/lib/job/expiry-worker"
	userhandler "job-portal-backend/lib/user"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	xlsexport.NewHandler()
	authhandler.NewHandler()
	userhandler.NewHandler()
	jobhandler.NewHandler()
	// depends on smtp and xls export
	applicationhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	interval := time.Duration(config.Conf.Workers.JobExpiryIntervalMin) * time.Minute
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	jobexpiryworker.StartWorker(ctx, interval)
}
