// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"izinoir/internal/config"
	"izinoir/internal/lsp"
)

const lsName = "izinoir"

var (
	version = "0.1.0"
	handler protocol.Handler
)

var log = commonlog.GetLogger("izinoir.lsp.server")

func main() {
	cfg := config.Load()

	strict := flag.Bool("strict", cfg.Strict, "reject assignments to undeclared or immutable names")
	verbosity := flag.Int("v", max(cfg.Verbosity, 1), "log verbosity")
	flag.Parse()

	// stdout carries the protocol, so logs go to stderr or the configured file
	commonlog.Configure(*verbosity, cfg.LogPath())

	h := lsp.NewHandler(*strict)

	handler = protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentHover:              h.TextDocumentHover,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Noticef("starting %s language server %s", lsName, version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
