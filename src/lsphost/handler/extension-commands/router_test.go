package extensioncommands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lsp-session-host/src/lsphost/controller/extension-commands/extensioncommandsmock"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"github.com/uber/lsp-session-host/src/lsphost/factory"
	"github.com/uber/lsp-session-host/src/lsphost/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type replyArgs struct {
	result interface{}
	err    error
}

// newRecordingReplier captures every reply, including those sent from another goroutine.
func newRecordingReplier() (jsonrpc2.Replier, <-chan replyArgs) {
	replies := make(chan replyArgs, 4)
	return func(ctx context.Context, result interface{}, err error) error {
		replies <- replyArgs{result: result, err: err}
		return nil
	}, replies
}

func awaitReply(t *testing.T, replies <-chan replyArgs) replyArgs {
	select {
	case r := <-replies:
		return r
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no reply")
		return replyArgs{}
	}
}

func newTestRouter(t *testing.T) (*jsonRPCRouter, *extensioncommandsmock.MockController) {
	c := extensioncommandsmock.NewMockController(gomock.NewController(t))
	return &jsonRPCRouter{
		ctrl:   c,
		uuid:   factory.UUID(),
		logger: zap.NewNop().Sugar(),
	}, c
}

func TestMethods(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		params    interface{}
		setReturn func(c *extensioncommandsmock.MockControllerMockRecorder, err error)
		want      interface{}
	}{
		{
			name:   "InvokeHostCommand",
			method: entity.MethodAtomCommandInvocation,
			params: "editor:newline",
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.InvokeHostCommand(gomock.Any(), "editor:newline").Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
		{
			name:   "ShowInputPrompt",
			method: entity.MethodShowInputPrompt,
			params: entity.ShowInputPromptRequestArgs{Name: "Path"},
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.ShowInputPrompt(gomock.Any(), &entity.ShowInputPromptRequestArgs{Name: "Path"}).Return(&entity.ShowInputPromptResponseBody{ResponseText: "/tmp"}, err)
			},
			want: &entity.ShowInputPromptResponseBody{ResponseText: "/tmp"},
		},
		{
			name:   "ShowChoicePrompt",
			method: entity.MethodShowChoicePrompt,
			params: factory.Choices("Continue?", "Yes", "No"),
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.ShowChoicePrompt(gomock.Any(), factory.Choices("Continue?", "Yes", "No")).Return(&entity.ShowChoicePromptResponseBody{ResponseText: "No"}, err)
			},
			want: &entity.ShowChoicePromptResponseBody{ResponseText: "No"},
		},
		{
			name:   "InsertText",
			method: entity.MethodInsertText,
			params: entity.InsertTextRequestArguments{FilePath: "a.ps1", InsertText: "x"},
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.InsertText(gomock.Any(), &entity.InsertTextRequestArguments{FilePath: "a.ps1", InsertText: "x"}).Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
		{
			name:   "SetSelection",
			method: entity.MethodSetSelection,
			params: entity.SetSelectionRequestArguments{},
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.SetSelection(gomock.Any(), &entity.SetSelectionRequestArguments{}).Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
		{
			name:   "OpenFile",
			method: entity.MethodOpenFile,
			params: "a.ps1",
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.OpenFile(gomock.Any(), "a.ps1").Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
		{
			name:   "CloseFile",
			method: entity.MethodCloseFile,
			params: "a.ps1",
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.CloseFile(gomock.Any(), "a.ps1").Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
		{
			name:   "SaveFile",
			method: entity.MethodSaveFile,
			params: "a.ps1",
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.SaveFile(gomock.Any(), "a.ps1").Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
		{
			name:   "ShowErrorMessage",
			method: entity.MethodShowErrorMessage,
			params: "boom",
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.ShowErrorMessage(gomock.Any(), "boom").Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
		{
			name:   "ShowWarningMessage",
			method: entity.MethodShowWarningMessage,
			params: "careful",
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.ShowWarningMessage(gomock.Any(), "careful").Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
		{
			name:   "ShowInformationMessage",
			method: entity.MethodShowInformationMessage,
			params: "done",
			setReturn: func(c *extensioncommandsmock.MockControllerMockRecorder, err error) {
				c.ShowInformationMessage(gomock.Any(), "done").Return(entity.EditorOperationCompleted, err)
			},
			want: entity.EditorOperationCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			r, c := newTestRouter(t)
			reply, replies := newRecordingReplier()

			// Valid params.
			tt.setReturn(c.EXPECT(), nil)
			require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(tt.method, tt.params)))
			got := awaitReply(t, replies)
			assert.NoError(t, got.err)
			assert.Equal(t, tt.want, got.result)

			// Invalid params.
			require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(tt.method, 5)))
			got = awaitReply(t, replies)
			var rpcErr *jsonrpc2.Error
			require.ErrorAs(t, got.err, &rpcErr)
			assert.Equal(t, jsonrpc2.InvalidParams, rpcErr.Code)

			// Controller error.
			tt.setReturn(c.EXPECT(), errors.New("err"))
			require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(tt.method, tt.params)))
			got = awaitReply(t, replies)
			require.ErrorAs(t, got.err, &rpcErr)
			assert.Equal(t, jsonrpc2.InternalError, rpcErr.Code)
		})
	}
}

func TestMethodsWithoutParams(t *testing.T) {
	ctx := context.Background()

	t.Run("GetEditorContext", func(t *testing.T) {
		r, c := newTestRouter(t)
		reply, replies := newRecordingReplier()
		editorContext := &entity.EditorContext{CurrentFilePath: "/proj/a.ps1"}
		c.EXPECT().GetEditorContext(gomock.Any()).Return(editorContext, nil)

		require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(entity.MethodGetEditorContext, nil)))
		got := awaitReply(t, replies)
		assert.NoError(t, got.err)
		assert.Equal(t, editorContext, got.result)
	})

	t.Run("GetEditorContext without editor", func(t *testing.T) {
		r, c := newTestRouter(t)
		reply, replies := newRecordingReplier()
		c.EXPECT().GetEditorContext(gomock.Any()).Return(nil, errors.New("No active text editor"))

		require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(entity.MethodGetEditorContext, nil)))
		got := awaitReply(t, replies)
		assert.Nil(t, got.result)
		assert.ErrorContains(t, got.err, "No active text editor")
	})

	t.Run("NewFile", func(t *testing.T) {
		r, c := newTestRouter(t)
		reply, replies := newRecordingReplier()
		c.EXPECT().NewFile(gomock.Any()).Return(entity.EditorOperationCompleted, nil)

		require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(entity.MethodNewFile, nil)))
		got := awaitReply(t, replies)
		assert.NoError(t, got.err)
		assert.Equal(t, entity.EditorOperationCompleted, got.result)
	})

	t.Run("SetStatusBarMessage accepts any params", func(t *testing.T) {
		r, c := newTestRouter(t)
		reply, replies := newRecordingReplier()
		c.EXPECT().SetStatusBarMessage(gomock.Any(), gomock.Any()).Return(entity.EditorOperationUnsupported, nil).Times(2)

		require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(entity.MethodSetStatusBarMessage, entity.StatusBarMessageDetails{Message: "Running"})))
		assert.Equal(t, replyArgs{result: entity.EditorOperationUnsupported}, awaitReply(t, replies))

		require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(entity.MethodSetStatusBarMessage, 5)))
		assert.Equal(t, replyArgs{result: entity.EditorOperationUnsupported}, awaitReply(t, replies))
	})
}

func TestHandleReqSetsSession(t *testing.T) {
	r, c := newTestRouter(t)
	reply, replies := newRecordingReplier()
	c.EXPECT().ShowInformationMessage(gomock.Any(), "hello").DoAndReturn(
		func(ctx context.Context, _ string) (entity.EditorOperationResponse, error) {
			id, err := mapper.ContextToSessionUUID(ctx)
			assert.NoError(t, err)
			assert.Equal(t, r.uuid, id)
			return entity.EditorOperationCompleted, nil
		})

	require.NoError(t, r.HandleReq(context.Background(), reply, factory.JSONRPCRequest(entity.MethodShowInformationMessage, "hello")))
	awaitReply(t, replies)
}

func TestPromptsDoNotBlock(t *testing.T) {
	r, c := newTestRouter(t)
	reply, replies := newRecordingReplier()
	release := make(chan struct{})
	opened := make(chan string, 2)

	c.EXPECT().ShowInputPrompt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args *entity.ShowInputPromptRequestArgs) (*entity.ShowInputPromptResponseBody, error) {
			opened <- args.Name
			<-release
			return &entity.ShowInputPromptResponseBody{ResponseText: args.Name}, nil
		}).Times(2)

	ctx := context.Background()
	require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(entity.MethodShowInputPrompt, entity.ShowInputPromptRequestArgs{Name: "first"})))
	require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(entity.MethodShowInputPrompt, entity.ShowInputPromptRequestArgs{Name: "second"})))

	// Both prompts are open at once.
	assert.ElementsMatch(t, []string{"first", "second"}, []string{<-opened, <-opened})
	assert.Empty(t, replies)

	close(release)
	got := []interface{}{awaitReply(t, replies).result, awaitReply(t, replies).result}
	assert.ElementsMatch(t, []interface{}{
		&entity.ShowInputPromptResponseBody{ResponseText: "first"},
		&entity.ShowInputPromptResponseBody{ResponseText: "second"},
	}, got)
}

func TestUnknownMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("method not found", func(t *testing.T) {
		r, _ := newTestRouter(t)
		reply, replies := newRecordingReplier()

		require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest("powerShell/unknown", nil)))
		got := awaitReply(t, replies)
		assert.ErrorIs(t, got.err, jsonrpc2.ErrMethodNotFound)
	})

	t.Run("fallback", func(t *testing.T) {
		r, _ := newTestRouter(t)
		reply, replies := newRecordingReplier()
		var handled string
		r.fallback = func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
			handled = req.Method()
			return reply(ctx, "fallback", nil)
		}

		require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest("window/showMessageRequest", nil)))
		assert.Equal(t, "window/showMessageRequest", handled)
		assert.Equal(t, replyArgs{result: "fallback"}, awaitReply(t, replies))
	})
}

func TestCount(t *testing.T) {
	r, c := newTestRouter(t)
	scope := tally.NewTestScope("testing", make(map[string]string, 0))
	r.stats = scope
	reply, replies := newRecordingReplier()
	c.EXPECT().ShowErrorMessage(gomock.Any(), "boom").Return(entity.EditorOperationCompleted, nil).Times(2)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest(entity.MethodShowErrorMessage, "boom")))
		awaitReply(t, replies)
	}
	require.NoError(t, r.HandleReq(ctx, reply, factory.JSONRPCRequest("powerShell/unknown", nil)))
	awaitReply(t, replies)

	counters := scope.Snapshot().Counters()
	require.Len(t, counters, 1)
	assert.Equal(t, int64(2), counters["testing.extension_command+method=editor/showErrorMessage"].Value())
}

func TestUUID(t *testing.T) {
	sampleUUID := factory.UUID()
	r := jsonRPCRouter{uuid: sampleUUID}
	assert.Equal(t, sampleUUID, r.UUID())
}
