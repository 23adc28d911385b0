package initializers

import (
	"context"

	"github.com/old-buffalo/task-management/config"
	"github.com/old-buffalo/task-management/fiberlog"
	authhandler "github.com/old-buffalo/task-management/lib/auth"
	dashboardhandler "github.com/old-buffalo/task-management/lib/dashboard"
	filestorage "github.com/old-buffalo/task-management/lib/file-storage"
	notificationhandler "github.com/old-buffalo/task-management/lib/notification"
	profilehandler "github.com/old-buffalo/task-management/lib/profile"
	taskhandler "github.com/old-buffalo/task-management/lib/task"
	teamhandler "github.com/old-buffalo/task-management/lib/team"
	workspacehandler "github.com/old-buffalo/task-management/lib/workspace"
	s3client "github.com/old-buffalo/task-management/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	filestorage.NewInstance(s3client.Client)
	authhandler.NewHandler()
	profilehandler.NewHandler()
	teamhandler.NewHandler()
	workspacehandler.NewHandler()
	taskhandler.NewHandler()
	notificationhandler.NewHandler()
	dashboardhandler.NewHandler()
}
