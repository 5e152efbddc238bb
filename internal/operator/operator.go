package operator

import (
	"context"
	"fmt"

	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
)

// WriterSource opens a Writer bound to a fresh database transaction.
type WriterSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	source WriterSource
	queue  chan ActionItem
}

func NewOperator(source WriterSource, queue chan ActionItem) *Operator {
	return &Operator{
		source: source,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

// processItem runs one action inside its own transaction. Any error or panic from the
// action rolls the transaction back.
func (o *Operator) processItem(item ActionItem) (err error) {
	if err = item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.source.Write(item.ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = writer.Rollback(context.WithoutCancel(item.ctx))
			err = fmt.Errorf("action %T panicked: %v", item.action, r)
		}
	}()

	if err = item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback(context.WithoutCancel(item.ctx))
		return err
	}

	return writer.Commit(item.ctx)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
