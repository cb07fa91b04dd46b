package api

import (
	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/internal/communications"
	"github.com/kgnguhan/agentic-chaser/internal/dashboard"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/factfind"
	"github.com/kgnguhan/agentic-chaser/internal/messaging"
	"github.com/kgnguhan/agentic-chaser/internal/ocr"
	"github.com/kgnguhan/agentic-chaser/internal/parsing"
	"github.com/kgnguhan/agentic-chaser/internal/postadvice"
	"github.com/kgnguhan/agentic-chaser/internal/predict"
	"github.com/kgnguhan/agentic-chaser/internal/priority"
	"github.com/kgnguhan/agentic-chaser/internal/prompts"
	"github.com/kgnguhan/agentic-chaser/internal/rpa"
	"github.com/kgnguhan/agentic-chaser/internal/scheduler"
	"github.com/kgnguhan/agentic-chaser/internal/scoring"
	"github.com/kgnguhan/agentic-chaser/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Clients        clients.System
	Cases          cases.System
	Documents      documents.System
	Communications communications.System
	PostAdvice     postadvice.System
	FactFind       factfind.System
	Dashboard      dashboard.System
	Prompts        prompts.System
	Parsing        parsing.System
	Predict        predict.System
	Scheduler      scheduler.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	clientSys := clients.New(db, runtime.Logger, runtime.Pagination)
	messageSys := communications.New(db, runtime.Logger, runtime.Pagination)
	promptSys := prompts.New(db, runtime.Logger, runtime.Pagination)

	evaluator := ocr.NewVisionEvaluator(runtime.Agents.Vision, runtime.Storage, runtime.Logger)
	docSys := documents.New(db, runtime.Storage, evaluator, runtime.Logger, runtime.Pagination)

	caseSys := cases.New(db, runtime.Logger, runtime.Pagination)
	factFindSys := factfind.New(db, docSys, runtime.Logger)
	postAdviceSys := postadvice.New(db, runtime.Logger, runtime.Pagination)

	sentiment := scoring.NewAgentSentimentScorer(runtime.Agents.Chat, runtime.Logger)
	engine := priority.NewEngine(
		nil,
		sentiment,
		caseSys,
		clientSys,
		docSys,
		messageSys,
		runtime.Logger,
	)

	messagingSys := messaging.New(promptSys, messageSys, clientSys, runtime.Agents.Chat, runtime.Logger)
	portal := rpa.New(caseSys, runtime.Logger)

	chaseRuntime := &workflow.Runtime{
		Cases:     caseSys,
		Documents: docSys,
		Messaging: messagingSys,
		Portal:    portal,
		Priority:  engine,
		Logger:    runtime.Logger.With("module", "workflow"),
	}

	schedulerSys := scheduler.New(
		runtime.Scheduler,
		chaseRuntime,
		factFindSys,
		postAdviceSys,
		runtime.Logger,
	)

	dashboardSys := dashboard.New(
		caseSys,
		clientSys,
		docSys,
		factFindSys,
		postAdviceSys,
		runtime.Logger,
	)

	return &Domain{
		Clients:        clientSys,
		Cases:          caseSys,
		Documents:      docSys,
		Communications: messageSys,
		PostAdvice:     postAdviceSys,
		FactFind:       factFindSys,
		Dashboard:      dashboardSys,
		Prompts:        promptSys,
		Parsing:        parsing.New(promptSys, runtime.Agents.Chat, runtime.Logger),
		Predict:        predict.New(caseSys, promptSys, runtime.Agents.Chat, runtime.Logger),
		Scheduler:      schedulerSys,
	}
}
