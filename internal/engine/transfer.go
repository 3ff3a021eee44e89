package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"securebank/internal/common"
	"securebank/internal/models"
	"securebank/internal/rules"
)

// TransferReceipt reports a successful transfer.
type TransferReceipt struct {
	From       string
	To         string
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
}

// Transfer validates and applies a funds transfer from the active identity.
// Checks run in fixed order: amount parsing, recipient existence, self-
// transfer, balance coverage. Debit and credit are applied atomically.
func (e *Engine) Transfer(ctx context.Context, recipient, rawAmount string) (rc *TransferReceipt, err error) {
	defer e.guard(ctx, "transfer", "Transfer failed.", &err)
	e.Touch()

	username, ok := e.sessions.Identity()
	if !ok {
		return nil, common.E(common.KindAuth, "Not logged in")
	}
	if recipient == "" || rawAmount == "" {
		return nil, common.E(common.KindValidation, "All fields are required")
	}

	amount, perr := rules.ParseTransferAmount(rawAmount, e.cfg.MinTransfer, e.cfg.MaxTransfer)
	if perr != nil {
		return nil, common.E(common.KindValidation, perr.Error())
	}

	exists, xerr := e.accounts.Exists(ctx, recipient)
	if xerr != nil {
		return nil, common.E(common.KindInternal, "Transfer failed.")
	}
	if !exists {
		e.audit(ctx, fmt.Sprintf("Transfer rejected for %s: recipient not found", username))
		e.collector.RecordTransfer("failure")
		return nil, common.E(common.KindTransfer, "Recipient not found")
	}
	if recipient == username {
		e.audit(ctx, fmt.Sprintf("Transfer rejected for %s: transfer to self", username))
		e.collector.RecordTransfer("failure")
		return nil, common.E(common.KindTransfer, "Cannot transfer to yourself")
	}

	if terr := e.accounts.TransferFunds(ctx, username, recipient, amount); terr != nil {
		if errors.Is(terr, common.ErrorInsufficientFunds) {
			e.audit(ctx, fmt.Sprintf("Transfer rejected for %s: insufficient balance", username))
			e.collector.RecordTransfer("failure")
			return nil, common.E(common.KindTransfer, "Insufficient balance")
		}
		return nil, common.E(common.KindInternal, "Transfer failed.")
	}

	newBalance, _ := e.accounts.Balance(ctx, username)
	recipientBalance, _ := e.accounts.Balance(ctx, recipient)
	e.collector.SetBalance(username, newBalance.InexactFloat64())
	e.collector.SetBalance(recipient, recipientBalance.InexactFloat64())
	e.collector.RecordTransfer("success")

	e.audit(ctx, fmt.Sprintf("Transfer: %s sent $%s to %s", username, amount.String(), recipient))
	e.log.Info(ctx, "transfer applied", "from", username, "to", recipient, "amount", amount.String())

	return &TransferReceipt{From: username, To: recipient, Amount: amount, NewBalance: newBalance}, nil
}

// Balance returns the balance for username; unknown usernames read as zero.
func (e *Engine) Balance(ctx context.Context, username string) (decimal.Decimal, error) {
	return e.accounts.Balance(ctx, username)
}

// ValidateUpload checks an attachment against the allow-list and size
// ceiling. An accepted document becomes the current attachment, last wins.
func (e *Engine) ValidateUpload(ctx context.Context, doc models.Document) (err error) {
	defer e.guard(ctx, "upload", "Upload failed.", &err)
	e.Touch()

	if _, ok := e.sessions.Identity(); !ok {
		return common.E(common.KindAuth, "Not logged in")
	}
	if verr := rules.ValidateUpload(doc, e.cfg.MaxUploadBytes); verr != nil {
		return common.E(common.KindValidation, verr.Error())
	}

	e.mu.Lock()
	e.document = &doc
	e.mu.Unlock()

	e.audit(ctx, fmt.Sprintf("Uploaded document: %s", doc.Name))
	return nil
}

// CurrentDocument returns the last accepted attachment, if any.
func (e *Engine) CurrentDocument() *models.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.document == nil {
		return nil
	}
	cp := *e.document
	return &cp
}
