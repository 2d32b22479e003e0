package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"proto-demo/api/gen/go/pithos/common"
)

func TestUser_Descriptor(t *testing.T) {
	desc := (&common.User{}).ProtoReflect().Descriptor()

	assert.Equal(t, protoreflect.FullName("pithos.common.User"), desc.FullName())
	assert.Equal(t, "pithos/common/user.proto", desc.ParentFile().Path())

	name := desc.Fields().ByName("name")
	if assert.NotNil(t, name) {
		assert.Equal(t, protoreflect.FieldNumber(1), name.Number())
		assert.Equal(t, protoreflect.StringKind, name.Kind())
	}

	id := desc.Fields().ByName("id")
	if assert.NotNil(t, id) {
		assert.Equal(t, protoreflect.FieldNumber(2), id.Number())
		assert.Equal(t, protoreflect.Int32Kind, id.Kind())
	}
}

func TestUser_Accessors(t *testing.T) {
	u := &common.User{}
	assert.Equal(t, "", u.GetName())
	assert.Equal(t, int32(0), u.GetId())

	u.Name = "Alex"
	u.Id = 101
	assert.Equal(t, "Alex", u.GetName())
	assert.Equal(t, int32(101), u.GetId())

	// Last assignment wins
	u.Name = "Sam"
	assert.Equal(t, "Sam", u.GetName())
}

func TestUser_NilGetters(t *testing.T) {
	var u *common.User
	assert.Equal(t, "", u.GetName())
	assert.Equal(t, int32(0), u.GetId())
}

func TestUser_CloneAndReset(t *testing.T) {
	u := &common.User{Name: "Alex", Id: 101}

	clone := proto.Clone(u).(*common.User)
	assert.True(t, proto.Equal(u, clone))

	clone.Reset()
	assert.True(t, proto.Equal(&common.User{}, clone))
	assert.Equal(t, "Alex", u.GetName())
}
