// Package lsp implements a Language Server Protocol server exposing the
// scope/action pipeline as editor code actions: "apply preset X to this
// document" rather than IDE features like completion or go-to-definition,
// which have no meaning for a text transformer.
package lsp

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sort"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"

	"github.com/structedit/structedit/pipeline"
)

// commandPrefix namespaces executeCommand commands so they don't collide
// with another server's, should one be chained in front of this one.
const commandPrefix = "structedit.apply."

// Server implements the Language Server Protocol over the preset registry:
// each configured preset becomes a code action offered on every document.
type Server struct {
	presets map[string]*pipeline.Pipeline

	// docs holds the last known full text of every open document, keyed by
	// URI, since the server syncs full documents rather than incremental
	// edits.
	docs map[string]string

	conn   jsonrpc2.Conn
	client protocol.Client
	logger *log.Logger

	workspaceRoot string
	capabilities  protocol.ServerCapabilities
	cancel        context.CancelFunc
}

// NewServer creates a Server offering the given named presets as code
// actions and executable commands.
func NewServer(presets map[string]*pipeline.Pipeline) *Server {
	logger := log.New(os.Stderr, "[structedit-lsp] ", log.LstdFlags)

	commands := make([]string, 0, len(presets))
	for name := range presets {
		commands = append(commands, commandPrefix+name)
	}
	sort.Strings(commands)

	return &Server{
		presets: presets,
		docs:    make(map[string]string),
		logger:  logger,
		capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
				Save:      &protocol.SaveOptions{IncludeText: false},
			},
			CodeActionProvider: true,
			ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
				Commands: commands,
			},
		},
	}
}

// Run starts the LSP server, communicating over stdin/stdout, until ctx is
// cancelled or a client-initiated exit is received.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Println("starting structedit language server")

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	stream := jsonrpc2.NewStream(stdrwc{})
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		s.logger.Printf("failed to create zap logger, falling back to nop: %v", err)
		zapLogger = zap.NewNop()
	}
	s.client = protocol.ClientDispatcher(conn, zapLogger)

	conn.Go(ctx, s.handler())

	<-ctx.Done()

	s.logger.Println("shutting down structedit language server")
	return conn.Close()
}

func (s *Server) handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.logger.Printf("received: %s", req.Method())

		switch req.Method() {
		case protocol.MethodInitialize:
			return s.handleInitialize(ctx, reply, req)
		case protocol.MethodInitialized:
			return reply(ctx, nil, nil)
		case protocol.MethodShutdown:
			return reply(ctx, nil, nil)
		case protocol.MethodExit:
			return s.handleExit(ctx, reply, req)
		case protocol.MethodTextDocumentDidOpen:
			return s.handleDidOpen(ctx, reply, req)
		case protocol.MethodTextDocumentDidChange:
			return s.handleDidChange(ctx, reply, req)
		case protocol.MethodTextDocumentDidClose:
			return s.handleDidClose(ctx, reply, req)
		case protocol.MethodTextDocumentCodeAction:
			return s.handleCodeAction(ctx, reply, req)
		case protocol.MethodWorkspaceExecuteCommand:
			return s.handleExecuteCommand(ctx, reply, req)
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.InitializeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse initialize params")
	}

	switch {
	case len(params.WorkspaceFolders) > 0:
		s.workspaceRoot = uri.URI(params.WorkspaceFolders[0].URI).Filename()
	case params.RootURI != "":
		s.workspaceRoot = params.RootURI.Filename()
	case params.RootPath != "":
		s.workspaceRoot = params.RootPath
	}
	s.logger.Printf("workspace root: %s", s.workspaceRoot)

	return reply(ctx, protocol.InitializeResult{
		Capabilities: s.capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    "structedit",
			Version: "0.1.0",
		},
	}, nil)
}

func (s *Server) handleExit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if err := reply(ctx, nil, nil); err != nil {
		s.logger.Printf("error replying to exit: %v", err)
	}
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

func (s *Server) handleDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse didOpen params")
	}
	s.docs[string(params.TextDocument.URI)] = params.TextDocument.Text
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse didChange params")
	}
	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}
	s.docs[string(params.TextDocument.URI)] = params.ContentChanges[len(params.ContentChanges)-1].Text
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse didClose params")
	}
	delete(s.docs, string(params.TextDocument.URI))
	return reply(ctx, nil, nil)
}

func (s *Server) replyWithError(ctx context.Context, reply jsonrpc2.Replier, code jsonrpc2.Code, message string) error {
	return reply(ctx, nil, &jsonrpc2.Error{Code: code, Message: message})
}

// stdrwc implements io.ReadWriteCloser over stdin/stdout.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
