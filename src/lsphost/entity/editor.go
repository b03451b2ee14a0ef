package entity

import "encoding/json"

// Position is a zero-based line/character location as sent over the wire.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a pair of wire positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// BufferPoint is a zero-based row/column location as the host editor reports it.
type BufferPoint struct {
	Row    int
	Column int
}

// BufferRange is a pair of host buffer points.
type BufferRange struct {
	Start BufferPoint
	End   BufferPoint
}

// Optional distinguishes a value the host does not apply (undefined) from one it reports as absent (nil).
type Optional[T any] struct {
	Defined bool
	Value   *T
}

// Some returns a defined Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Defined: true, Value: &v}
}

// Null returns a defined Optional without a value.
func Null[T any]() Optional[T] {
	return Optional[T]{Defined: true}
}

// EditorContext describes the active editor for the language server.
type EditorContext struct {
	CurrentFilePath string
	CursorPosition  Optional[Position]
	SelectionRange  Optional[Range]
}

// MarshalJSON omits undefined fields and writes null for defined fields without a value.
func (c EditorContext) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 3)
	if c.CurrentFilePath != "" {
		out["currentFilePath"] = c.CurrentFilePath
	}
	if c.CursorPosition.Defined {
		out["cursorPosition"] = c.CursorPosition.Value
	}
	if c.SelectionRange.Defined {
		out["selectionRange"] = c.SelectionRange.Value
	}
	return json.Marshal(out)
}

// EditorOperationResponse is the result code of an editor command.
type EditorOperationResponse int

const (
	EditorOperationUnsupported EditorOperationResponse = 0
	EditorOperationCompleted   EditorOperationResponse = 1
)

// ShowInputPromptRequestArgs are the parameters of powerShell/showInputPrompt.
type ShowInputPromptRequestArgs struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// ShowInputPromptResponseBody is the result of powerShell/showInputPrompt.
type ShowInputPromptResponseBody struct {
	ResponseText    string `json:"responseText"`
	PromptCancelled bool   `json:"promptCancelled"`
}

// ChoiceDetails is a single option of a choice prompt.
type ChoiceDetails struct {
	Label       string `json:"label"`
	HelpMessage string `json:"helpMessage"`
}

// ShowChoicePromptRequestArgs are the parameters of powerShell/showChoicePrompt.
type ShowChoicePromptRequestArgs struct {
	IsMultiChoice  bool            `json:"isMultiChoice"`
	Caption        string          `json:"caption"`
	Message        string          `json:"message"`
	Choices        []ChoiceDetails `json:"choices"`
	DefaultChoices []int           `json:"defaultChoices"`
}

// ShowChoicePromptResponseBody is the result of powerShell/showChoicePrompt.
type ShowChoicePromptResponseBody struct {
	ResponseText    string `json:"responseText"`
	PromptCancelled bool   `json:"promptCancelled"`
}

// InsertTextRequestArguments are the parameters of editor/insertText.
type InsertTextRequestArguments struct {
	FilePath    string `json:"filePath"`
	InsertText  string `json:"insertText"`
	InsertRange Range  `json:"insertRange"`
}

// SetSelectionRequestArguments are the parameters of editor/setSelection.
type SetSelectionRequestArguments struct {
	SelectionRange Range `json:"selectionRange"`
}

// StatusBarMessageDetails are the parameters of editor/setStatusBarMessage.
type StatusBarMessageDetails struct {
	Message string `json:"message"`
	Timeout *int   `json:"timeout,omitempty"`
}

// InputMenuResultReason tells whether a host prompt completed or was dismissed.
type InputMenuResultReason int

const (
	InputMenuResultCompleted InputMenuResultReason = iota
	InputMenuResultCancelled
)

// InputResult is the outcome of a host input prompt.
type InputResult struct {
	Reason InputMenuResultReason
	Value  string
}

// MenuItem is a single entry of a host selection menu.
type MenuItem struct {
	Name    string
	Display string
}

// MenuResult is the outcome of a host selection menu. Index is -1 when nothing was selected.
type MenuResult struct {
	Reason InputMenuResultReason
	Index  int
}
