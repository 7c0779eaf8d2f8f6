package domain

import "fmt"

// ExitKind categorizes a replay process exit code.
type ExitKind string

// Exit kinds reported by the replay process.
const (
	ExitPassed            ExitKind = "passed"
	ExitTestFailure       ExitKind = "test_failure"
	ExitCompilationError  ExitKind = "compilation_error"
	ExitSetupError        ExitKind = "setup_error"
	ExitRecordingError    ExitKind = "recording_error"
	ExitValidationError   ExitKind = "validation_error"
	ExitSignalTermination ExitKind = "signal_termination"
	ExitSystemError       ExitKind = "system_error"
)

const (
	signalExitBase = 128
	minSignalExit  = 129
	maxSignalExit  = 143
)

// ExitClass is the classification of a single exit code.
type ExitClass struct {
	Code        int
	Kind        ExitKind
	Description string
}

// ClassifyExitCode maps a replay exit code to its category and a
// human-readable description used as the report message.
func ClassifyExitCode(code int) ExitClass {
	class := ExitClass{Code: code}

	switch {
	case code == 0:
		class.Kind = ExitPassed
		class.Description = "Test passed successfully"
	case code == 1:
		class.Kind = ExitTestFailure
		class.Description = "Test failed"
	case code == 2:
		class.Kind = ExitCompilationError
		class.Description = "Compilation or build error occurred"
	case code == 3:
		class.Kind = ExitSetupError
		class.Description = "Test setup or environment error"
	case code == 4:
		class.Kind = ExitRecordingError
		class.Description = "Recording or file system error"
	case code == 5:
		class.Kind = ExitValidationError
		class.Description = "Test validation or format error"
	case code >= minSignalExit && code <= maxSignalExit:
		class.Kind = ExitSignalTermination
		class.Description = fmt.Sprintf("Process terminated by signal %d", code-signalExitBase)
	default:
		class.Kind = ExitSystemError
		class.Description = fmt.Sprintf("System error (exit code %d)", code)
	}

	return class
}
