package logging

import (
	"github.com/fernandosanchezjr/bitinverter/utils"
	"github.com/sirupsen/logrus"
	"io/ioutil"
	"path"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	folder := t.TempDir()
	utils.SetHomeFolder(folder)
	defer utils.SetHomeFolder(utils.DefaultHomeFolder)
	if err := SetupLogger("debug"); err != nil {
		t.Fatal(err)
	}
	logrus.WithField("strategy", "log2").Debugln("Logging test")
	Close()
	data, err := ioutil.ReadFile(path.Join(folder, LogPath, "log.out"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Logging test") {
		t.Fatalf("log file missing entry: %q", string(data))
	}
	logrus.SetLevel(logrus.InfoLevel)
}

func TestSetupLogger_BadLevel(t *testing.T) {
	if err := SetupLogger("chatty"); err == nil {
		t.Fatal("expected level parse error")
	}
}
