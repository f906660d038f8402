package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validApplication() *ApplicationInput {
	return &ApplicationInput{
		Name:       "Ana Souza",
		Email:      "ana@x.com",
		Company:    "Acme",
		Motivation: strings.Repeat("a", 50),
	}
}

func TestApplicationOk(t *testing.T) {
	require.NoError(t, Check(validApplication()))
}

func TestApplicationBadEmail(t *testing.T) {
	in := validApplication()
	in.Email = "not-an-email"

	err := Check(in)
	require.Error(t, err)

	verr := err.(*Error)
	require.Len(t, verr.Fields, 1)
	require.Equal(t, "email", verr.Fields[0].Field)
	require.Equal(t, "Email inválido", verr.Fields[0].Message)
}

func TestMotivationBounds(t *testing.T) {
	for length, ok := range map[int]bool{49: false, 50: true, 1000: true, 1001: false} {
		in := validApplication()
		in.Motivation = strings.Repeat("x", length)

		err := Check(in)
		if ok {
			require.NoError(t, err, "length %d", length)
		} else {
			require.Error(t, err, "length %d", length)
		}
	}
}

func TestNameBounds(t *testing.T) {
	in := validApplication()
	in.Name = "A"
	require.Error(t, Check(in))

	in.Name = strings.Repeat("a", 101)
	require.Error(t, Check(in))

	in.Name = "Al"
	require.NoError(t, Check(in))
}

func TestMemberInput(t *testing.T) {
	in := &MemberInput{InviteToken: "ttt", Expertise: []string{"Vendas"}}
	require.NoError(t, Check(in))

	in.Expertise = nil
	require.Error(t, Check(in))

	in.Expertise = []string{"Vendas"}
	in.InviteToken = ""
	require.Error(t, Check(in))

	in.InviteToken = "ttt"
	in.Bio = strings.Repeat("b", 501)
	require.Error(t, Check(in))
}

func TestReviewInput(t *testing.T) {
	require.Error(t, Check(&ReviewInput{}))
	require.NoError(t, Check(&ReviewInput{ReviewedBy: "Carla"}))
}

func TestParseListQueryDefaults(t *testing.T) {
	q, err := ParseListQuery("", "", "")
	require.NoError(t, err)
	require.Equal(t, 1, q.Page)
	require.Equal(t, 20, q.Limit)
	require.Empty(t, q.Status)
}

func TestParseListQuery(t *testing.T) {
	q, err := ParseListQuery("PENDING", "3", "50")
	require.NoError(t, err)
	require.Equal(t, "PENDING", q.Status)
	require.Equal(t, 3, q.Page)
	require.Equal(t, 50, q.Limit)
}

func TestParseListQueryBad(t *testing.T) {
	_, err := ParseListQuery("WAITING", "", "")
	require.Error(t, err)

	_, err = ParseListQuery("", "0", "")
	require.Error(t, err)

	_, err = ParseListQuery("", "x", "")
	require.Error(t, err)

	_, err = ParseListQuery("", "", "101")
	require.Error(t, err)
}
