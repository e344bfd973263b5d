//----------------------------------------------------------------------
// This file is part of Diophantus.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Diophantus is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Diophantus is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Package logger implements a leveled, channel-based singleton logger:
// one goroutine owns the output file and serializes every write, so
// concurrent callers (the --batch CLI mode, most notably) never
// interleave partial lines.
package logger

import (
	"fmt"
	"os"
	"time"
)

// Logging levels, lowest-to-highest severity-inverted: FATAL messages
// are always printed, TRACE messages only when the configured level is
// turned all the way up. Matches the CLI's -v/--verbosity contract
// (0..5, default INFO=3).
const (
	FATAL = iota
	ERROR
	WARN
	INFO
	DEBUG
	TRACE

	// ROTATE is a command, not a level: ask the logger goroutine to
	// rotate its output file.
	ROTATE = iota
)

// logMsg is one message in flight between a caller and the logger
// goroutine; Formatters render it to its final string form.
type logMsg struct {
	ts    time.Time
	level int
	text  string
}

type logger struct {
	msgChan   chan logMsg // message to be logged
	cmdChan   chan int    // commands to be executed
	logfile   *os.File    // current log file (can be stdout/stderr)
	started   time.Time   // start time of current log file
	level     int         // current log level
	formatter Formatter   // render function
}

var logInst *logger // singleton logger instance

func init() {
	logInst = &logger{
		msgChan:   make(chan logMsg),
		cmdChan:   make(chan int),
		logfile:   os.Stdout,
		started:   time.Now(),
		level:     INFO,
		formatter: SimpleFormat,
	}
	go func() {
		for {
			select {
			case msg := <-logInst.msgChan:
				logInst.logfile.WriteString(logInst.formatter(&msg))
			case cmd := <-logInst.cmdChan:
				switch cmd {
				case ROTATE:
					rotate()
				}
			}
		}
	}()
}

func rotate() {
	if logInst.logfile == os.Stdout {
		Println(WARN, "[log] log rotation for 'stdout' not applicable.")
		return
	}
	fname := logInst.logfile.Name()
	logInst.logfile.Close()
	ts := logInst.started.Format(time.RFC3339)
	os.Rename(fname, fname+"."+ts)
	f, err := os.Create(fname)
	if err != nil {
		logInst.logfile = os.Stdout
		return
	}
	logInst.logfile = f
	logInst.started = time.Now()
}

// Println logs line at the given level if the logger is currently
// configured to show messages at least that severe.
func Println(level int, line string) {
	if level <= logInst.level {
		logInst.msgChan <- logMsg{ts: time.Now(), level: level, text: line}
	}
}

// Printf formats and logs a message at the given level.
func Printf(level int, format string, v ...interface{}) {
	if level <= logInst.level {
		logInst.msgChan <- logMsg{ts: time.Now(), level: level, text: fmt.Sprintf(format, v...)}
	}
}

// LogToFile switches output to filename, creating it if necessary.
func LogToFile(filename string) bool {
	Println(INFO, "[log] file-based logging to '"+filename+"'")
	f, err := os.Create(filename)
	if err != nil {
		Println(ERROR, "[log] can't enable file-based logging!")
		return false
	}
	logInst.logfile = f
	logInst.started = time.Now()
	return true
}

// Rotate asks the logger goroutine to rotate its output file.
func Rotate() {
	logInst.cmdChan <- ROTATE
}

// GetLogLevel returns the numeric log level currently in effect.
func GetLogLevel() int {
	return logInst.level
}

// GetLogLevelName returns the current log level in human-readable form.
func GetLogLevelName() string {
	return levelName(logInst.level)
}

// SetLogLevel sets the logging level from its numeric value (0..5).
func SetLogLevel(lvl int) {
	if lvl < FATAL || lvl > TRACE {
		Printf(WARN, "[logger] Unknown loglevel '%d' requested -- ignored.\n", lvl)
		return
	}
	logInst.level = lvl
}

// SetLogLevelFromName sets the logging level from its symbolic name.
func SetLogLevelFromName(name string) {
	for lvl := FATAL; lvl <= TRACE; lvl++ {
		if levelName(lvl) == name {
			logInst.level = lvl
			return
		}
	}
	Println(WARN, "[logger] Unknown loglevel '"+name+"' requested.")
}

// SetFormatter replaces the logger's output Formatter.
func SetFormatter(f Formatter) {
	logInst.formatter = f
}

func levelName(level int) string {
	switch level {
	case FATAL:
		return "FATAL"
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN_LOGLEVEL"
}

func getTag(level int) string {
	switch level {
	case FATAL:
		return "{F}"
	case ERROR:
		return "{E}"
	case WARN:
		return "{W}"
	case INFO:
		return "{I}"
	case DEBUG:
		return "{D}"
	case TRACE:
		return "{T}"
	}
	return "{?}"
}
