package document

import (
	"context"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

// Delete elimina un documento y todo su detalle. Solo Administrador. El stock
// no se restituye: eliminar el registro no es una devolución de mercadería.
// La copia PDF archivada se borra si existe; su ausencia no es error.
func (uc *DocumentUseCase) Delete(ctx context.Context, actor dto.Actor, id int64) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	err = uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		_ repository.ProductRepository,
	) error {
		if err := docRepo.DeleteItemsByDocumentID(id); err != nil {
			return err
		}
		return docRepo.Delete(id)
	})
	if err != nil {
		return err
	}
	if uc.archiver != nil {
		if err := uc.archiver.Remove(doc.Type, doc.ID); err != nil {
			uc.log.Warn().Err(err).Int64("id", id).Msg("no se pudo borrar la copia de archivo")
		}
	}
	uc.log.Info().Str("type", doc.Type).Int64("id", id).Msg("documento eliminado")
	return nil
}
