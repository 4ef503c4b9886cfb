package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lexi-lab/lexiscan/pkg/domain/types"
)

func TestNewDocumentID(t *testing.T) {
	id1 := types.NewDocumentID()
	id2 := types.NewDocumentID()

	gt.NoError(t, id1.Validate()).Required()
	gt.NoError(t, id2.Validate()).Required()
	gt.String(t, id1.String()).NotEqual(id2.String())
}

func TestDocumentIDValidate(t *testing.T) {
	gt.Error(t, types.DocumentID("").Validate())
	gt.Error(t, types.DocumentID("not-a-uuid").Validate())
}
