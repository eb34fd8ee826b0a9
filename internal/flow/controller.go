// Package flow drives a visitor through role selection, intake forms and the dashboard.
//
// A Controller is owned by exactly one session and is not safe for concurrent use.
// Renderers read it through CurrentScreen and call the transition methods; they never
// mutate its state directly.
package flow

import (
	"fmt"

	"github.com/nurpe/agroexchange/internal/model"
)

// ViewListener is notified after every successful view change.
type ViewListener func(from, to model.View)

type Option func(*Controller)

func WithViewListener(l ViewListener) Option {
	return func(c *Controller) {
		c.listener = l
	}
}

// sellerDraft holds the seller type chosen on the first seller step. It is not an intent.
type sellerDraft struct {
	sellerType model.SellerType
}

type Controller struct {
	view   model.View
	role   model.Role
	buyer  *model.BuyerIntent
	seller *model.SellerIntent
	draft  sellerDraft

	listener ViewListener
}

func New(opts ...Option) *Controller {
	c := &Controller{view: model.ViewLanding}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ActiveIntent carries the intent matching the current role. At most one field is set.
type ActiveIntent struct {
	Buyer  *model.BuyerIntent
	Seller *model.SellerIntent
}

func (a ActiveIntent) IsSet() bool {
	return a.Buyer != nil || a.Seller != nil
}

// Location returns the location of whichever intent is set.
func (a ActiveIntent) Location() string {
	switch {
	case a.Buyer != nil:
		return a.Buyer.Location
	case a.Seller != nil:
		return a.Seller.Location
	default:
		return ""
	}
}

type Screen struct {
	View   model.View
	Role   model.Role
	Intent ActiveIntent
}

func (c *Controller) View() model.View {
	return c.view
}

func (c *Controller) Start() error {
	switch c.view {
	case model.ViewLanding, model.ViewMarketplace, model.ViewHowItWorks:
		c.moveTo(model.ViewRoleSelection)
		return nil
	default:
		return c.illegal("start")
	}
}

// SelectRole records the role and opens its first step. Repeating the call for the role
// whose first step is already showing is a no-op.
func (c *Controller) SelectRole(r model.Role) error {
	if r.Valid() && c.role == r && c.view == entryView(r) {
		return nil
	}
	if c.view != model.ViewRoleSelection {
		return c.illegal("select role")
	}
	switch r {
	case model.RoleBuyer:
		c.draft = sellerDraft{}
		c.role = r
		c.moveTo(model.ViewBuyerForm)
	case model.RoleSeller:
		c.role = r
		c.moveTo(model.ViewSellerType)
	default:
		return fmt.Errorf("%w: role %q", ErrInvalidArgument, r)
	}
	return nil
}

// SubmitBuyerIntent validates the form and, on success, commits it and shows the dashboard.
// On failure the controller is left untouched.
func (c *Controller) SubmitBuyerIntent(form BuyerForm) (model.BuyerIntent, error) {
	if c.view != model.ViewBuyerForm {
		return model.BuyerIntent{}, c.illegal("submit buyer intent")
	}
	intent, err := form.validate()
	if err != nil {
		return model.BuyerIntent{}, err
	}
	c.buyer = &intent
	c.moveTo(model.ViewDashboard)
	return intent.Clone(), nil
}

func (c *Controller) SelectSellerType(t model.SellerType) error {
	if c.view != model.ViewSellerType {
		return c.illegal("select seller type")
	}
	if !t.Valid() {
		return fmt.Errorf("%w: seller type %q", ErrInvalidArgument, t)
	}
	c.draft.sellerType = t
	c.moveTo(model.ViewSellerForm)
	return nil
}

// SubmitSellerIntent completes the second seller step using the type recorded by SelectSellerType.
func (c *Controller) SubmitSellerIntent(form SellerForm) (model.SellerIntent, error) {
	if c.view != model.ViewSellerForm {
		return model.SellerIntent{}, c.illegal("submit seller intent")
	}
	if !c.draft.sellerType.Valid() {
		return model.SellerIntent{}, fmt.Errorf("%w: seller type was never selected", ErrInvalidTransition)
	}
	intent, err := form.validate(c.draft.sellerType)
	if err != nil {
		return model.SellerIntent{}, err
	}
	c.seller = &intent
	c.moveTo(model.ViewDashboard)
	return intent.Clone(), nil
}

func (c *Controller) GoBack() error {
	switch c.view {
	case model.ViewBuyerForm, model.ViewSellerType:
		c.moveTo(model.ViewRoleSelection)
	case model.ViewSellerForm:
		c.moveTo(model.ViewSellerType)
	case model.ViewRoleSelection:
		c.moveTo(model.ViewLanding)
	default:
		return c.illegal("go back")
	}
	return nil
}

// NavigateTo jumps to a top-level page from anywhere. Role, draft and intents are kept.
func (c *Controller) NavigateTo(v model.View) error {
	switch v {
	case model.ViewLanding, model.ViewMarketplace, model.ViewHowItWorks, model.ViewRoleSelection:
		c.moveTo(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot navigate directly to %q", ErrInvalidArgument, v)
	}
}

func (c *Controller) CurrentScreen() Screen {
	screen := Screen{View: c.view, Role: c.role}
	switch c.role {
	case model.RoleBuyer:
		if c.buyer != nil {
			intent := c.buyer.Clone()
			screen.Intent.Buyer = &intent
		}
	case model.RoleSeller:
		if c.seller != nil {
			intent := c.seller.Clone()
			screen.Intent.Seller = &intent
		}
	}
	return screen
}

// PendingSellerType reports the seller type chosen on the first seller step, if any.
func (c *Controller) PendingSellerType() (model.SellerType, bool) {
	return c.draft.sellerType, c.draft.sellerType.Valid()
}

func (c *Controller) moveTo(next model.View) {
	prev := c.view
	c.view = next
	if c.listener != nil {
		c.listener(prev, next)
	}
}

func entryView(r model.Role) model.View {
	if r == model.RoleSeller {
		return model.ViewSellerType
	}
	return model.ViewBuyerForm
}

func (c *Controller) illegal(op string) error {
	return &TransitionError{Op: op, From: c.view}
}
