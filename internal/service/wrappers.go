package service

// SignatureRequestServiceWrapper defines middleware composition for
// SignatureRequestService. Implementations wrap an existing service to add
// behavior such as validating.
type SignatureRequestServiceWrapper interface {
	Wrap(SignatureRequestService) SignatureRequestService // returns a decorated SignatureRequestService applying additional behavior
}
