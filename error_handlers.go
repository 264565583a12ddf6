package parmat

// reportDeliveryFailure reports a task that could not be queued or a reply
// that could not be handed back.
//
// Delivery failures never stop the pool. If no handler is registered, the
// error is only logged by the caller.
func (p *pool[T]) reportDeliveryFailure(err error) {
	if p.opts.OnDeliveryFailure != nil {
		p.opts.OnDeliveryFailure(err)
	}
}

// reportTaskError reports an error returned by a task or produced by panic
// recovery.
func (p *pool[T]) reportTaskError(err error) {
	if p.opts.OnTaskError != nil {
		p.opts.OnTaskError(err)
	}
}
