package events

import (
	"github.com/vsinha/transferplan/pkg/domain/entities"
)

const (
	RunStartedEvent       = "run.started"
	StageStartedEvent     = "stage.started"
	TransferRecordedEvent = "transfer.recorded"
	StageCompletedEvent   = "stage.completed"
	RunCompletedEvent     = "run.completed"
)

// Stage names carried by stage events
const (
	RegionalStage = "regional"
	GlobalStage   = "global"
)

type RunStarted struct {
	RowCount int `json:"row_count"`
}

type StageStarted struct {
	Stage string `json:"stage"`
}

type TransferRecorded struct {
	Instruction entities.TransferInstruction `json:"instruction"`
}

type StageCompleted struct {
	Stage         string `json:"stage"`
	TransferCount int    `json:"transfer_count"`
}

type RunCompleted struct {
	InstructionCount int    `json:"instruction_count"`
	UnmetNeed        string `json:"unmet_need"`
}

func NewRunStartedEvent(runID string, rowCount int) Event {
	return NewEvent(RunStartedEvent, runID, RunStarted{RowCount: rowCount})
}

func NewStageStartedEvent(runID, stage string) Event {
	return NewEvent(StageStartedEvent, runID, StageStarted{Stage: stage})
}

func NewTransferRecordedEvent(runID string, instruction entities.TransferInstruction) Event {
	return NewEvent(TransferRecordedEvent, runID, TransferRecorded{Instruction: instruction})
}

func NewStageCompletedEvent(runID, stage string, transferCount int) Event {
	return NewEvent(StageCompletedEvent, runID, StageCompleted{
		Stage:         stage,
		TransferCount: transferCount,
	})
}

func NewRunCompletedEvent(runID string, instructionCount int, unmetNeed string) Event {
	return NewEvent(RunCompletedEvent, runID, RunCompleted{
		InstructionCount: instructionCount,
		UnmetNeed:        unmetNeed,
	})
}
