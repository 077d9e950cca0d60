/*
Package gsheet uploads tabular data to a Google Sheets worksheet.

gsheet-upload is a command line tool that appends the rows of a tabular dataset to the
first worksheet of a named Google Sheets workbook and then reads the worksheet back for
verification. Authentication uses a Google service account key file and the target
workbook is resolved by name via the Google Drive API.

gsheet-upload supports the following commands:

  - upload, to append a tabular dataset (from a TSV file or the built-in sample) to the first worksheet of a workbook
  - view, to display the current contents of the first worksheet of a workbook
  - version, to display the current version
*/
package gsheet
