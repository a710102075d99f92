package event

import "testing"

// A failed constructor can leave main holding a nil *EventPublisher; wired
// through the Publisher interface it is non-nil, so every publish method must
// degrade like a disabled publisher instead of dereferencing the receiver.
func TestNilPublisherDegradesSilently(t *testing.T) {
	var concrete *EventPublisher
	var publisher Publisher = concrete

	if publisher == nil {
		t.Fatal("interface holding a typed nil should not compare equal to nil")
	}

	if err := publisher.PublishEngineerEvent(&EngineerEvent{EventType: EventTypeEngineerOnboarded}); err != nil {
		t.Errorf("PublishEngineerEvent: %v", err)
	}
	if err := publisher.PublishSkillEvent(&SkillEvent{EventType: EventTypeSkillCreated}); err != nil {
		t.Errorf("PublishSkillEvent: %v", err)
	}
	if err := publisher.PublishFocusEvent(&FocusEvent{EventType: EventTypeFocusCreated}); err != nil {
		t.Errorf("PublishFocusEvent: %v", err)
	}
	if err := publisher.PublishActivityEvent(&ActivityEvent{EventType: EventTypeActivityLogged}); err != nil {
		t.Errorf("PublishActivityEvent: %v", err)
	}
	if err := publisher.PublishSystemEvent(&SystemEvent{EventType: EventTypeServiceStarted}); err != nil {
		t.Errorf("PublishSystemEvent: %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestDisabledPublisherSkipsPublishing(t *testing.T) {
	publisher, err := NewEventPublisher("", "talent.events")
	if err != nil {
		t.Fatalf("NewEventPublisher with empty URI: %v", err)
	}

	if err := publisher.PublishFocusEvent(&FocusEvent{EventType: EventTypeFocusCreated}); err != nil {
		t.Errorf("disabled publisher should swallow publishes, got %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
