package config

import "time"

const (
	// DefaultStorePath is the default player data store file
	DefaultStorePath = "playerData.json"
	// DefaultBackupDir is the directory for pre-migration backups
	DefaultBackupDir = "backups"
	// DefaultReportFile is the default migration report file name
	DefaultReportFile = "migration-report.json"
	// DefaultReportDir is the default report output directory
	DefaultReportDir = "storage"

	// DefaultRemoteUser is the production host SSH user
	DefaultRemoteUser = "bitnami"
	// DefaultRemoteHost is the production host address
	DefaultRemoteHost = "13.238.148.170"
	// DefaultRemoteDir is the bot checkout on the production host
	DefaultRemoteDir = "/opt/bitnami/projects/castbot"
	// DefaultRemoteTimeout bounds the whole remote setup call
	DefaultRemoteTimeout = 30 * time.Second
	// DefaultRemoteLogPath is where live analytics lines land on the host
	DefaultRemoteLogPath = "/tmp/castbot-analytics.log"
)
