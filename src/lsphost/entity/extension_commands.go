package entity

// Extended command methods sent by the language server to the editor host.
const (
	MethodAtomCommandInvocation  = "powerShell/atomCommandInvocation"
	MethodShowInputPrompt        = "powerShell/showInputPrompt"
	MethodShowChoicePrompt       = "powerShell/showChoicePrompt"
	MethodGetEditorContext       = "editor/getEditorContext"
	MethodInsertText             = "editor/insertText"
	MethodSetSelection           = "editor/setSelection"
	MethodOpenFile               = "editor/openFile"
	MethodNewFile                = "editor/newFile"
	MethodCloseFile              = "editor/closeFile"
	MethodSaveFile               = "editor/saveFile"
	MethodShowErrorMessage       = "editor/showErrorMessage"
	MethodShowWarningMessage     = "editor/showWarningMessage"
	MethodShowInformationMessage = "editor/showInformationMessage"
	MethodSetStatusBarMessage    = "editor/setStatusBarMessage"
)
