package lsp

import (
	"context"
	"encoding/json"
	"sort"
	"unicode/utf16"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// handleCodeAction offers one code action per configured preset, each
// wrapping a workspace/executeCommand call that applies that preset's
// pipeline to the whole document.
func (s *Server) handleCodeAction(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.CodeActionParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse codeAction params")
	}

	docURI := params.TextDocument.URI

	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)

	actions := make([]protocol.CodeAction, 0, len(names))
	for _, name := range names {
		actions = append(actions, protocol.CodeAction{
			Title: "Apply preset: " + name,
			Kind:  protocol.SourceFixAll,
			Command: &protocol.Command{
				Title:     "Apply preset: " + name,
				Command:   commandPrefix + name,
				Arguments: []interface{}{string(docURI)},
			},
		})
	}

	return reply(ctx, actions, nil)
}

// handleExecuteCommand applies the preset named by the command to the
// named document's current in-memory text, replacing the document's
// entire contents via a workspace edit.
func (s *Server) handleExecuteCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.ExecuteCommandParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse executeCommand params")
	}

	presetName, ok := presetNameFromCommand(params.Command)
	if !ok {
		return s.replyWithError(ctx, reply, jsonrpc2.MethodNotFound, "unknown command: "+params.Command)
	}

	p, ok := s.presets[presetName]
	if !ok {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "unknown preset: "+presetName)
	}

	if len(params.Arguments) == 0 {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "missing document URI argument")
	}
	docURI, ok := params.Arguments[0].(string)
	if !ok {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "document URI argument must be a string")
	}

	current, ok := s.docs[docURI]
	if !ok {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "document not open: "+docURI)
	}

	transformed := p.Run(current)
	if transformed == current {
		return reply(ctx, nil, nil)
	}

	edit := protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentURI][]protocol.TextEdit{
			protocol.DocumentURI(docURI): {
				{
					Range:   wholeDocumentRange(current),
					NewText: transformed,
				},
			},
		},
	}

	if s.client != nil {
		if _, err := s.client.ApplyEdit(ctx, &protocol.ApplyWorkspaceEditParams{Edit: edit}); err != nil {
			s.logger.Printf("error applying edit: %v", err)
			return s.replyWithError(ctx, reply, jsonrpc2.InternalError, "failed to apply edit")
		}
	}
	s.docs[docURI] = transformed

	return reply(ctx, nil, nil)
}

func presetNameFromCommand(command string) (string, bool) {
	if len(command) <= len(commandPrefix) || command[:len(commandPrefix)] != commandPrefix {
		return "", false
	}
	return command[len(commandPrefix):], true
}

// wholeDocumentRange returns a Range spanning all of text, counted in
// UTF-16 code units per line as the LSP spec requires. Since every
// document we hold is replaced wholesale rather than patched, callers
// only need the end position to be large enough to subsume the document;
// editors clamp an overlong end position to the actual document end.
func wholeDocumentRange(text string) protocol.Range {
	lines := 0
	lastLineStart := 0
	for i, r := range text {
		if r == '\n' {
			lines++
			lastLineStart = i + 1
		}
	}
	lastLineLen := len(utf16.Encode([]rune(text[lastLineStart:])))

	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: uint32(lines), Character: uint32(lastLineLen)},
	}
}
