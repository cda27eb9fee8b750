package service

import (
	"Club/dao"
	"context"
	"reflect"
	"testing"
)

func TestFetchMentionNames(t *testing.T) {
	cases := []struct {
		content string
		want    []string
	}{
		{"ping @bob please review", []string{"bob"}},
		{"@alice @bob @alice", []string{"alice", "bob"}},
		{"hello @a-b_c!", []string{"a-b_c"}},
		{"mail me at foo@example.com", []string{"example"}},
		{"no mentions here", []string{}},
	}
	for _, tc := range cases {
		got := fetchMentionNames(tc.content)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("fetchMentionNames(%q) = %v, want %v", tc.content, got, tc.want)
		}
	}
}

func TestSendMessageToMentionUsers(t *testing.T) {
	db := newTestDB(t)
	s := &AtService{
		UserDAO:    dao.NewUsers(db),
		MessageDAO: dao.NewMessage(db),
	}
	sender := seedUser(t, db, "sender", false)
	bob := seedUser(t, db, "bob", false)

	err := s.SendMessageToMentionUsers(context.Background(), "cc @bob @ghost @sender", 42, sender.ID)
	if err != nil {
		t.Fatalf("SendMessageToMentionUsers: %v", err)
	}

	// 不存在的用户跳过，@自己不通知
	msgs := loadMessages(t, db)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].MasterID != bob.ID || msgs[0].AuthorID != sender.ID || msgs[0].TopicID != 42 {
		t.Fatalf("wrong message: %+v", msgs[0])
	}
}

func TestSendMessageToMentionUsers_NoMentions(t *testing.T) {
	db := newTestDB(t)
	s := &AtService{
		UserDAO:    dao.NewUsers(db),
		MessageDAO: dao.NewMessage(db),
	}
	sender := seedUser(t, db, "sender", false)

	if err := s.SendMessageToMentionUsers(context.Background(), "plain text", 1, sender.ID); err != nil {
		t.Fatalf("SendMessageToMentionUsers: %v", err)
	}
	if msgs := loadMessages(t, db); len(msgs) != 0 {
		t.Fatalf("expected no messages, got %d", len(msgs))
	}
}
