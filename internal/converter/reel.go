package converter

import (
	"fmt"

	"slot_reel/internal/api/dto/reel"
	"slot_reel/internal/model"

	"github.com/google/uuid"
)

func ToSequenceResponse(seq model.ReelSequence) reel.SequenceResponse {
	symbols := make([]int, len(seq.Symbols))
	copy(symbols, seq.Symbols)

	return reel.SequenceResponse{
		Name:    seq.Name,
		Symbols: symbols,
	}
}

func ToDataResponse(data model.Data) reel.DataResponse {
	return reel.DataResponse{
		Balance: data.Balance,
	}
}

func ToSpinResponse(conf model.SpinConfirmation) reel.SpinResponse {
	return reel.SpinResponse{
		SpinID:  conf.SpinID.String(),
		Bet:     conf.Bet,
		Balance: conf.Balance,
	}
}

func ToWinReport(req reel.WinRequest) (model.WinReport, error) {
	id, err := uuid.Parse(req.SpinID)
	if err != nil {
		return model.WinReport{}, fmt.Errorf("invalid spin_id: %w", err)
	}

	return model.WinReport{
		SpinID: id,
		Amount: req.Amount,
	}, nil
}

func ToWinResponse(ack model.WinAck) reel.WinResponse {
	return reel.WinResponse{
		SpinID:  ack.SpinID.String(),
		Amount:  ack.Amount,
		Balance: ack.Balance,
	}
}
