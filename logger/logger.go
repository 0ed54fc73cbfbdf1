/*
The MIT License (MIT)

Copyright (c) 2018 SavinMax. All rights reserved.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

var logLevel int32 = LL_INFO
var logDriver int32 = LD_DEFAULT

const (
	LD_DEFAULT = iota
	LD_ZAP
)

const (
	LL_DEBUG = iota
	LL_INFO
	LL_WARNING
	LL_ERROR
)

var (
	outMu  sync.Mutex
	output io.Writer = os.Stdout
)

// SetOutput redirects the default driver.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	output = w
}

func SetLogger(ld int32) {
	atomic.StoreInt32(&logDriver, ld)
}

// SetLevel accepts DEBUG, INFO, WARNING and ERROR, case insensitive.
func SetLevel(level string) error {
	var ll int32
	switch strings.ToUpper(level) {
	case "DEBUG":
		ll = LL_DEBUG
	case "", "INFO":
		ll = LL_INFO
	case "WARNING", "WARN":
		ll = LL_WARNING
	case "ERROR":
		ll = LL_ERROR
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}
	atomic.StoreInt32(&logLevel, ll)
	syncZapLevel(ll)
	return nil
}

func useZap() bool {
	return atomic.LoadInt32(&logDriver) == LD_ZAP && sugarLogger != nil
}

func enabled(level int32) bool {
	return atomic.LoadInt32(&logLevel) <= level
}

func ERR(v ...interface{}) {
	if useZap() {
		sugarLogger.Error(v...)
		return
	}
	add(formatErr(v...))
}

func ERRf(format string, v ...interface{}) {
	ERR(fmt.Sprintf(format, v...))
}

func WARN(v ...interface{}) {
	if !enabled(LL_WARNING) {
		return
	}
	if useZap() {
		sugarLogger.Warn(v...)
		return
	}
	add(formatWarn(v...))
}

func WARNf(format string, v ...interface{}) {
	WARN(fmt.Sprintf(format, v...))
}

func INFO(v ...interface{}) {
	if !enabled(LL_INFO) {
		return
	}
	if useZap() {
		sugarLogger.Info(v...)
		return
	}
	add(formatInfo(v...))
}

func INFOf(format string, v ...interface{}) {
	INFO(fmt.Sprintf(format, v...))
}

func DEBUG(v ...interface{}) {
	if !enabled(LL_DEBUG) {
		return
	}
	if useZap() {
		sugarLogger.Debug(v...)
		return
	}
	add(formatDebug(v...))
}

// Stop flushes buffered zap output.
func Stop() {
	if useZap() {
		_ = sugarLogger.Sync()
	}
}

func add(msg string) {
	outMu.Lock()
	defer outMu.Unlock()
	_, _ = io.WriteString(output, msg)
}

const (
	debugFormator = "\033[1;35m[DEBUG] %v \033[0m\n"
	infoFormator  = "\033[32m[INFO] %v \033[0m\n"
	warnFormator  = "\033[1;33m[WARN] %v \033[0m\n"
	errorFormator = "\033[1;4;31m[ERROR] %v \033[0m\n"
)

func formatDebug(v ...interface{}) string {
	return fmt.Sprintf(debugFormator, fmt.Sprint(v...))
}

func formatInfo(v ...interface{}) string {
	return fmt.Sprintf(infoFormator, fmt.Sprint(v...))
}

func formatWarn(v ...interface{}) string {
	return fmt.Sprintf(warnFormator, fmt.Sprint(v...))
}

func formatErr(v ...interface{}) string {
	return fmt.Sprintf(errorFormator, strings.TrimRight(fmt.Sprintln(v...), "\n"))
}
