package config

import (
	"github.com/ReconfigureIO/logruzio"
	"github.com/sirupsen/logrus"
)

func SetupLogging(version string, conf *Config) error {
	level, err := logrus.ParseLevel(conf.Link.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if conf.Link.Production() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if conf.Link.LogzioToken == "" {
		return nil
	}

	ctx := logrus.Fields{
		"Environment": conf.Link.Env,
		"Version":     version,
		"Application": conf.ProgramName,
	}
	hook, err := logruzio.New(conf.Link.LogzioToken, conf.ProgramName, ctx)
	if err != nil {
		return err
	}
	logrus.AddHook(hook)
	return nil
}
