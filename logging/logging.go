package logging

import (
	"github.com/fernandosanchezjr/bitinverter/utils"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
)

const LogPath = "logs"

var logFile *os.File

func openLogFile() *os.File {
	logFolder := utils.GetSubFolder(LogPath)
	f, err := os.OpenFile(path.Join(logFolder, "log.out"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		logrus.WithError(err).Fatal("Error opening log file")
		return nil
	}
	return f
}

func exitHandler() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// SetupLogger logs to stdout and to logs/log.out under the home folder.
func SetupLogger(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	logrus.SetLevel(parsed)
	logFile = openLogFile()
	logrus.RegisterExitHandler(exitHandler)
	logrus.SetOutput(io.MultiWriter(logFile, os.Stdout))
	return nil
}

func Close() {
	exitHandler()
	logrus.SetOutput(os.Stdout)
	logFile = nil
}
