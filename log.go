package nock

import (
	"github.com/sirupsen/logrus"
)

// tracer traces with component key 'nock', on Log or else the standard logger.
func (me *Interp) tracer() *logrus.Entry {
	return me.logger().WithField("component", "nock")
}

func (me *Interp) logger() *logrus.Logger {
	if me.Log != nil {
		return me.Log
	}
	return logrus.StandardLogger()
}
