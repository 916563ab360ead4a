// Package logger is a thin logrus wrapper that tags every record with the
// object (stream, demuxer, packet) it belongs to.
package logger

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

type stringer interface {
	String() string
}

const maxObjLen = 20

func objToString(obj any) (objStr string) {
	if obj == nil {
		objStr = "NIL"
	} else if stringerObj, ok := obj.(stringer); ok {
		objStr = stringerObj.String()
	} else if objStr, ok = obj.(string); ok {
	} else {
		objStr = reflect.TypeOf(obj).Name()
	}
	if len(objStr) > maxObjLen {
		objStr = objStr[:maxObjLen]
	}
	return
}

// Init sets the global log level and the text formatter shared by all
// packages of the library.
func Init(lvl logrus.Level) {
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "2006/02/01 15:04:05",
	})
}

func log(logFn func(...any), obj any, message string) {
	logFn(fmt.Sprintf("|%20s|%s", objToString(obj), message))
}

func Trace(object any, message string) {
	if logrus.GetLevel() >= logrus.TraceLevel {
		log(logrus.Trace, object, message)
	}
}

func Tracef(object any, message string, args ...any) {
	if logrus.GetLevel() >= logrus.TraceLevel {
		log(logrus.Trace, object, fmt.Sprintf(message, args...))
	}
}

func Debug(object any, message string) {
	if logrus.GetLevel() >= logrus.DebugLevel {
		log(logrus.Debug, object, message)
	}
}

func Debugf(object any, message string, args ...any) {
	if logrus.GetLevel() >= logrus.DebugLevel {
		log(logrus.Debug, object, fmt.Sprintf(message, args...))
	}
}

func Info(object any, message string) {
	if logrus.GetLevel() >= logrus.InfoLevel {
		log(logrus.Info, object, message)
	}
}

func Infof(object any, message string, args ...any) {
	if logrus.GetLevel() >= logrus.InfoLevel {
		log(logrus.Info, object, fmt.Sprintf(message, args...))
	}
}

func Warn(object any, message string) {
	if logrus.GetLevel() >= logrus.WarnLevel {
		log(logrus.Warn, object, message)
	}
}

func Warnf(object any, message string, args ...any) {
	if logrus.GetLevel() >= logrus.WarnLevel {
		log(logrus.Warn, object, fmt.Sprintf(message, args...))
	}
}

func Error(object any, message string) {
	log(logrus.Error, object, message)
}

func Errorf(object any, message string, args ...any) {
	log(logrus.Error, object, fmt.Sprintf(message, args...))
}
