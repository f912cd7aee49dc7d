package services

const (
	EventListShared = "shared_list.shared"
	EventListBought = "shared_list.bought"
)

type GroupEvent struct {
	Kind    string `json:"kind"`
	GroupID uint   `json:"group_id"`
	UserID  uint   `json:"user_id"` // who triggered the event
	Payload any    `json:"payload,omitempty"`
}

// GroupEventBus pushes shared-shopping-list events to every member of
// the affected group through the realtime hub. A nil hub (as in tests)
// makes Emit a no-op.
type GroupEventBus struct {
	hub      *RealtimeHub
	groupSvc *GroupService
}

func NewGroupEventBus(hub *RealtimeHub, gs *GroupService) *GroupEventBus {
	return &GroupEventBus{hub: hub, groupSvc: gs}
}

func (b *GroupEventBus) Emit(groupID uint, ev GroupEvent) {
	if b == nil || b.hub == nil {
		return
	}
	ids, err := b.groupSvc.MemberIDs(groupID)
	if err != nil {
		return
	}
	for _, id := range ids {
		b.hub.Send(id, ev)
	}
}
